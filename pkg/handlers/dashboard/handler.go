package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/api"
	"github.com/spendlens/spendlens/pkg/models/domain"
	"github.com/spendlens/spendlens/pkg/services/ledger"
	"github.com/spendlens/spendlens/pkg/services/period"
	"github.com/spendlens/spendlens/pkg/services/timeline"
	"github.com/spendlens/spendlens/pkg/services/view"
	"github.com/spendlens/spendlens/pkg/store/csvstore"
)

// SnapshotSource provides the current transaction snapshot and reloads it
// from the source CSV.
type SnapshotSource interface {
	Snapshot() (csvstore.Snapshot, bool)
	Load(ctx context.Context) (csvstore.Snapshot, error)
}

type Handler struct {
	source   SnapshotSource
	calendar period.Calendar
}

func NewHandler(source SnapshotSource, calendar period.Calendar) *Handler {
	return &Handler{
		source:   source,
		calendar: calendar,
	}
}

// GetSummary returns overall credit/debit totals and net balance.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.source.Snapshot()
	sum := timeline.Summarize(snap.Transactions)

	writeJSON(w, r, api.Summary{
		TotalCredit:  sum.TotalCredit,
		TotalDebit:   sum.TotalDebit,
		NetBalance:   sum.NetBalance,
		Transactions: sum.Count,
		SkippedRows:  snap.Skipped,
	})
}

// GetTimeline returns the aggregated chart rows for the requested
// granularity. Unknown group_by values fall back to monthly.
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	g := domain.ParseGranularity(r.URL.Query().Get("group_by"))
	snap, _ := h.source.Snapshot()
	tl := timeline.Aggregate(snap.Transactions, g, h.calendar)

	writeJSON(w, r, api.Timeline{
		GroupBy:    string(g),
		Totals:     tl.Totals,
		ByType:     tl.ByType,
		ByCategory: tl.ByCategory,
		Tooltips:   tl.Tooltips,
	})
}

// GetPeriodTransactions returns the drill-down list behind one period label,
// newest first.
func (h *Handler) GetPeriodTransactions(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("period")
	if label == "" {
		http.Error(w, "missing 'period' query parameter", http.StatusBadRequest)
		return
	}
	g := domain.ParseGranularity(r.URL.Query().Get("group_by"))

	snap, _ := h.source.Snapshot()
	txs := timeline.DrillDown(snap.Transactions, label, g, h.calendar)
	writeJSON(w, r, toAPITransactions(txs))
}

// ListCategories returns the distinct categories observed, in first-seen
// order, prefixed with the "All" sentinel.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	snap, _ := h.source.Snapshot()
	writeJSON(w, r, view.Categories(snap.Transactions))
}

// ListTransactions returns the filtered, sorted transaction table.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := view.Filter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Range:    q.Get("range"),
	}
	if raw := q.Get("min_amount"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			http.Error(w, "invalid 'min_amount' value. Expected a decimal number", http.StatusBadRequest)
			return
		}
		filter.MinAmount = &min
	}
	if raw := q.Get("max_amount"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			http.Error(w, "invalid 'max_amount' value. Expected a decimal number", http.StatusBadRequest)
			return
		}
		filter.MaxAmount = &max
	}

	snap, _ := h.source.Snapshot()
	txs := filter.Apply(snap.Transactions)
	txs = view.Sort(txs, view.SortBy(q.Get("sort")), view.Order(q.Get("order")))
	writeJSON(w, r, toAPITransactions(txs))
}

// Reload re-fetches the source CSV and installs a fresh snapshot.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snap, err := h.source.Load(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to reload transactions")
		http.Error(w, "failed to reload transactions", http.StatusBadGateway)
		return
	}

	writeJSON(w, r, api.ReloadResult{
		Loaded:   len(snap.Transactions),
		Skipped:  snap.Skipped,
		LoadedAt: snap.LoadedAt,
	})
}

func toAPITransactions(txs []domain.Transaction) []api.Transaction {
	out := make([]api.Transaction, 0, len(txs))
	for _, t := range txs {
		amount, _ := t.Amount.Round(2).Float64()
		out = append(out, api.Transaction{
			Date:        t.Date.Format(ledger.DateFormat),
			Account:     t.Account,
			Category:    t.Category,
			Description: t.Description,
			Amount:      amount,
			Type:        string(t.Type),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
