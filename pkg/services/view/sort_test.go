package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

func TestSortByDate(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 10, "10", "b"),
		tx(2025, time.January, 5, "10", "a"),
		tx(2025, time.February, 20, "10", "c"),
	}

	asc := Sort(txs, ByDate, Asc)
	require.Len(t, asc, 3)
	assert.Equal(t, "a", asc[0].Category)
	assert.Equal(t, "c", asc[1].Category)
	assert.Equal(t, "b", asc[2].Category)

	desc := Sort(txs, ByDate, Desc)
	assert.Equal(t, "b", desc[0].Category)
	assert.Equal(t, "a", desc[2].Category)
}

func TestSortByCategory(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 1, "10", "Transport"),
		tx(2025, time.March, 2, "10", "Groceries"),
		tx(2025, time.March, 3, "10", "Salary"),
	}

	got := Sort(txs, ByCategory, Asc)
	assert.Equal(t, "Groceries", got[0].Category)
	assert.Equal(t, "Salary", got[1].Category)
	assert.Equal(t, "Transport", got[2].Category)
}

func TestSortByAmount(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 1, "50", "mid"),
		tx(2025, time.March, 2, "5", "low"),
		tx(2025, time.March, 3, "500", "high"),
	}

	got := Sort(txs, ByAmount, Desc)
	assert.Equal(t, "high", got[0].Category)
	assert.Equal(t, "mid", got[1].Category)
	assert.Equal(t, "low", got[2].Category)
}

func TestSortStableOnTies(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 1, "10", "first"),
		tx(2025, time.March, 1, "10", "second"),
		tx(2025, time.March, 1, "10", "third"),
	}

	for _, order := range []Order{Asc, Desc} {
		got := Sort(txs, ByDate, order)
		assert.Equal(t, "first", got[0].Category)
		assert.Equal(t, "second", got[1].Category)
		assert.Equal(t, "third", got[2].Category)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 10, "10", "b"),
		tx(2025, time.January, 5, "10", "a"),
	}

	_ = Sort(txs, ByDate, Asc)
	assert.Equal(t, "b", txs[0].Category)
}

func TestSortUnknownColumnFallsBackToDate(t *testing.T) {
	txs := []domain.Transaction{
		tx(2025, time.March, 10, "10", "b"),
		tx(2025, time.January, 5, "10", "a"),
	}

	got := Sort(txs, SortBy("bogus"), Asc)
	assert.Equal(t, "a", got[0].Category)
}
