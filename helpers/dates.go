package helpers

import "time"

// DateLayout is the calendar date format stored on every record.
const DateLayout = "2006-01-02"

// Today is the UTC calendar date of c.
func Today(c Clock) string {
	return c.Now().UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ValidDate reports whether s is a real YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ShiftDate moves a YYYY-MM-DD date by days calendar days.
func ShiftDate(s string, days int) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// DaysBetween returns b minus a in whole days.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
