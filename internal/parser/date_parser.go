package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseLeaveDate parses the date formats accepted by the leave commands:
// - yyyy-mm-dd (e.g. "2026-03-09")
// - dd/mm/yyyy (e.g. "09/03/2026")
// - "today", "tomorrow"
// - X days / X weeks from today (e.g. "3 days", "2 weeks")
// The result is truncated to midnight local time; leave dates are dates.
func ParseLeaveDate(input string) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch input {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if d, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return d, nil
	}
	if d, err := parseSlashDate(input); err == nil {
		return d, nil
	}
	if d, err := parseRelativeDays(input, today); err == nil {
		return d, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, or X weeks", input)
}

var slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// parseSlashDate parses dd/mm/yyyy.
func parseSlashDate(input string) (time.Time, error) {
	matches := slashDateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// Reject rollovers like 31/02.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}
	return d, nil
}

var relativeDaysRegex = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)

// parseRelativeDays parses "X days" or "X weeks" counted from today.
func parseRelativeDays(input string, today time.Time) (time.Time, error) {
	matches := relativeDaysRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 1 and 365")
		}
		return today.AddDate(0, 0, amount), nil
	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return time.Time{}, fmt.Errorf("weeks must be between 1 and 52")
		}
		return today.AddDate(0, 0, amount*7), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported unit")
	}
}

// APIDate formats a date the way the backend expects leave and summary
// range parameters.
func APIDate(d time.Time) string {
	return d.Format("2006-01-02")
}
