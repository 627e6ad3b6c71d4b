package payment

import "time"

// Month identifies a calendar month in the reporting timezone.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	// day 0 of the next month is the last day of this one
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns midnight on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight on the last day of the month.
func (m Month) End() time.Time {
	return time.Date(m.Year, m.Month, m.Days(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether date falls inside the month.
func (m Month) Contains(date time.Time) bool {
	return date.Year() == m.Year && date.Month() == m.Month
}

func (m Month) String() string {
	return m.Start().Format("2006-01")
}

// DatesBetween expands an inclusive date range into individual calendar
// days in ascending order. A reversed range yields just the first date,
// matching the single-date recording path.
func DatesBetween(from, to time.Time) []time.Time {
	from = truncateToDay(from)
	to = truncateToDay(to)

	dates := []time.Time{from}
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
