package domain

import "strings"

// Granularity selects the bucket size used when grouping transactions.
type Granularity string

const (
	Monthly Granularity = "monthly"
	Weekly  Granularity = "weekly"
)

// ParseGranularity maps user input to a supported granularity. Unknown or
// empty values fall back to Monthly rather than erroring.
func ParseGranularity(s string) Granularity {
	if strings.EqualFold(s, string(Weekly)) {
		return Weekly
	}
	return Monthly
}
