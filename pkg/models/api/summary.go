package api

import "time"

// Summary is the headline view over the full transaction set.
type Summary struct {
	TotalCredit  float64 `json:"total_credit"`
	TotalDebit   float64 `json:"total_debit"`
	NetBalance   float64 `json:"net_balance"`
	Transactions int     `json:"transactions"`
	SkippedRows  int     `json:"skipped_rows"`
}

// Transaction is the wire form of one transaction for tables and drill-down.
type Transaction struct {
	Date        string  `json:"date"` // dd-mm-yyyy, as in the source CSV
	Account     string  `json:"account"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

// ReloadResult reports the outcome of a reload of the source CSV.
type ReloadResult struct {
	Loaded   int       `json:"loaded"`
	Skipped  int       `json:"skipped"`
	LoadedAt time.Time `json:"loaded_at"`
}
