package domain

import "time"

// Report represents a complete ledger analysis report
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalCredit float64
	TotalDebit  float64
	NetBalance  float64
}

// TimePeriod represents the date range covered by the report
type TimePeriod struct {
	Start time.Time
	End   time.Time
	Days  int
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
