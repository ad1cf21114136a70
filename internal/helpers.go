package internal

import "time"

const (
	formatDDMMYYYY     = "02.01.2006"
	formatDDMMYYYYHHMM = "02.01.2006 15:04"
)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

// FormatDateTime renders date in UTC with minutes, e.g. "10.03.2024 18:00 UTC".
func FormatDateTime(date time.Time) string {
	return date.UTC().Format(formatDDMMYYYYHHMM) + " UTC"
}
