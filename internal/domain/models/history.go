package models

import "time"

// DateLayout is the calendar-date format the exchange API uses both as a
// query parameter and as the date field of its responses (dd.mm.yyyy).
const DateLayout = "02.01.2006"

// RateEntry holds one currency's rates for one date, passed through from the
// remote source without rounding.
type RateEntry struct {
	Currency string  `json:"currency" example:"USD"`
	Sale     float64 `json:"sale" example:"41.85"`
	Purchase float64 `json:"purchase" example:"41.25"`
}

// DailyRecord is the filtered view of one day's exchange rates: the remote
// response reduced to the currencies the caller asked for. An empty Rates
// map is a legitimate record (the remote listed none of the wanted codes).
type DailyRecord struct {
	Date  string               `json:"date" example:"02.01.2026"`
	Rates map[string]RateEntry `json:"rates"`
}

// Status describes how much of a requested history window was retrieved.
type Status string

const (
	// StatusComplete means every requested date produced a record.
	StatusComplete Status = "complete"
	// StatusPartial means some dates failed but at least one succeeded.
	StatusPartial Status = "partial"
	// StatusEmpty means every requested date failed. Distinct from a
	// complete result whose records happen to have empty rate maps.
	StatusEmpty Status = "empty"
)

// HistoryResult is the aggregate outcome of one history request.
//
// Days is ordered oldest to newest regardless of the completion order of
// the underlying remote calls; a date whose fetch failed is omitted from
// Days and recorded in Failures instead (date -> failure kind).
type HistoryResult struct {
	Status   Status            `json:"status"`
	Days     []DailyRecord     `json:"days"`
	Failures map[string]string `json:"failures,omitempty"`
}

// CurrencyFilter is an immutable membership set of currency codes. It is
// built once per request and shared read-only by the concurrent per-date
// fetches.
type CurrencyFilter map[string]struct{}

// NewCurrencyFilter builds a filter from a list of codes. Codes are taken
// as-is; normalization (upper-casing, trimming) is the caller's concern.
func NewCurrencyFilter(codes []string) CurrencyFilter {
	f := make(CurrencyFilter, len(codes))
	for _, c := range codes {
		f[c] = struct{}{}
	}
	return f
}

// Contains reports whether code is part of the filter.
func (f CurrencyFilter) Contains(code string) bool {
	_, ok := f[code]
	return ok
}

// FormatDate renders t as a DateKey (dd.mm.yyyy).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateKey back into a time value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
