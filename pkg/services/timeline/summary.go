package timeline

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/pkg/models/domain"
)

// Summary is the headline view over the whole transaction set.
type Summary struct {
	TotalCredit float64
	TotalDebit  float64
	NetBalance  float64
	Count       int
}

// Summarize totals credits and debits across all transactions. Net balance is
// credit minus debit, each rounded to two places.
func Summarize(txs []domain.Transaction) Summary {
	var credit, debit decimal.Decimal
	for _, t := range txs {
		if t.Type == domain.Debit {
			debit = debit.Add(t.Amount)
		} else {
			credit = credit.Add(t.Amount)
		}
	}
	return Summary{
		TotalCredit: round(credit),
		TotalDebit:  round(debit),
		NetBalance:  round(credit.Sub(debit)),
		Count:       len(txs),
	}
}
