package csvstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/services/ledger"
)

// Snapshot is one immutable view of the source CSV. A load replaces the
// previous snapshot wholesale; nothing is ever mutated in place.
type Snapshot struct {
	Transactions []domain.Transaction
	Skipped      int
	LoadedAt     time.Time
	Source       string
}

type Settings struct {
	// Source is a local file path or an http(s) URL.
	Source string
	// Client is used for URL sources. Defaults to http.DefaultClient.
	Client *http.Client
}

// Store owns the current transaction snapshot. There is exactly one writer
// path (Load) and any number of readers (Snapshot); readers only ever see
// fully committed snapshots.
type Store struct {
	settings Settings

	group singleflight.Group

	mu        sync.Mutex
	snapshot  Snapshot
	loaded    bool
	gen       uint64
	committed uint64
}

func NewStore(settings Settings) *Store {
	if settings.Client == nil {
		settings.Client = http.DefaultClient
	}
	return &Store{settings: settings}
}

// Load fetches and parses the whole source, then installs the result as the
// current snapshot. Concurrent calls share one fetch; when loads overlap, the
// most recently started load wins and stale results are dropped.
func (s *Store) Load(ctx context.Context) (Snapshot, error) {
	v, err, _ := s.group.Do(s.settings.Source, func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (s *Store) load(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	rc, err := s.open(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	defer rc.Close()

	res, err := ledger.Read(rc)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Transactions: res.Transactions,
		Skipped:      res.Skipped,
		LoadedAt:     time.Now().UTC(),
		Source:       s.settings.Source,
	}

	logger := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.committed {
		// A load that started later already finished; this result is stale.
		logger.Debug().Uint64("generation", gen).Msg("dropping stale load")
		return s.snapshot, nil
	}
	s.snapshot = snap
	s.committed = gen
	s.loaded = true

	logger.Info().
		Int("transactions", len(snap.Transactions)).
		Int("skipped", snap.Skipped).
		Str("source", snap.Source).
		Msg("loaded transactions")
	return snap, nil
}

func (s *Store) open(ctx context.Context) (io.ReadCloser, error) {
	src := s.settings.Source
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("building request for %s: %w", src, err)
		}
		resp, err := s.settings.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: unexpected status %s", src, resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src, err)
	}
	return f, nil
}

// Snapshot returns the current snapshot and whether any load has completed.
func (s *Store) Snapshot() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.loaded
}
