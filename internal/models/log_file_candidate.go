package models

import (
	"time"

	"cloud.google.com/go/civil"
)

const (
	// LogDateLayout is the date embedded in access log names (…-20170630[.gz]).
	LogDateLayout = "20060102"
	// ReportDateLayout is the date embedded in report names (report-2017.06.30.html).
	ReportDateLayout = "2006.01.02"
)

// LogFileCandidate is the log file selected for processing in a run.
type LogFileCandidate struct {
	Date civil.Date
	// Name is the file name relative to the log directory.
	Name       string
	Compressed bool
}

// ReportName returns the file name of the report for the candidate's date,
// e.g. "report-2017.06.30.html".
func (c *LogFileCandidate) ReportName() string {
	return "report-" + c.Date.In(time.UTC).Format(ReportDateLayout) + ".html"
}

// ParseDate parses value with layout into a calendar date.
func ParseDate(layout, value string) (civil.Date, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t), nil
}
