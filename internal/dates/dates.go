package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout is the date form used across the store and report filenames.
const Layout = "20060102"

var postDateRegex = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)

// Infer resolves a month/day mentioned in a posting to a full YYYYMMDD date.
// The posting carries no year: assume the current one, and roll to the next
// year only when that month/day has already passed today.
func Infer(today time.Time, month, day int) (string, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid month/day: %d/%d", month, day)
	}

	year := today.Year()
	candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())
	if candidate.Month() != time.Month(month) || candidate.Day() != day {
		return "", fmt.Errorf("invalid day %d for month %d", day, month)
	}

	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if candidate.Before(todayMidnight) {
		candidate = candidate.AddDate(1, 0, 0)
	}

	return candidate.Format(Layout), nil
}

// FromContent extracts a "M월 D일" mention from posting text and infers the
// full date. The second return is false when no date is mentioned or the
// mention does not resolve to a real calendar date.
func FromContent(today time.Time, text string) (string, bool) {
	matches := postDateRegex.FindStringSubmatch(text)
	if len(matches) < 3 {
		return "", false
	}

	month, _ := strconv.Atoi(matches[1])
	day, _ := strconv.Atoi(matches[2])

	date, err := Infer(today, month, day)
	if err != nil {
		return "", false
	}
	return date, true
}
