package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxType string

const (
	Credit TxType = "Credit"
	Debit  TxType = "Debit"
)

// Transaction is one normalized row of the source CSV. Amount is always a
// non-negative magnitude; the sign of the source amount survives only in Type.
type Transaction struct {
	Date        time.Time
	Account     string
	Category    string
	Description string
	Amount      decimal.Decimal
	Type        TxType
}
