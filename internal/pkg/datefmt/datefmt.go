// Package datefmt renders the date forms the report rows carry: the
// machine-sortable API form, the display form and a locale-aware long day
// name. The formatter is constructed once and passed in, not kept as
// package state.
package datefmt

import "time"

const (
	apiLayout     = "2006-01-02"
	displayLayout = "02/01/2006"
)

var indonesianDays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// Formatter renders dates for a fixed locale ("id" or "en").
type Formatter struct {
	locale string
}

func NewFormatter(locale string) *Formatter {
	return &Formatter{locale: locale}
}

// APIDate renders the machine-sortable form used for filtering and sorting.
func (f *Formatter) APIDate(t time.Time) string {
	return t.Format(apiLayout)
}

// DisplayDate renders the short display form shown in the table.
func (f *Formatter) DisplayDate(t time.Time) string {
	return t.Format(displayLayout)
}

// DayName renders the long weekday name in the formatter's locale.
func (f *Formatter) DayName(t time.Time) string {
	if f.locale == "id" {
		return indonesianDays[t.Weekday()]
	}
	return t.Weekday().String()
}
