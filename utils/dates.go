// utils/dates.go
package utils

import "time"

const (
	DateLayout   = "2006-01-02"
	DateLayoutBR = "02/01/2006"
	TimeLayout   = "15:04"
)

// Today returns the current calendar date in snapshot form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDateBR converts a YYYY-MM-DD date to the Brazilian DD/MM/YYYY form
// used in client messages. Unparseable input is returned unchanged.
func FormatDateBR(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DateLayoutBR)
}
