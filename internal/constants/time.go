package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DayMillis is one day in epoch milliseconds, the unit of the habit
	// continuity check.
	DayMillis int64 = 24 * 60 * 60 * 1000
)
