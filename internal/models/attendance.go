package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AttendanceRecord is one day's attendance as reported by the server.
// Date arrives as an ISO datetime ("2023-10-27T00:00:00"); InTime/OutTime
// are time-of-day strings ("09:30:00") and are null while the corresponding
// punch has not happened.
type AttendanceRecord struct {
	Date        string  `json:"date"`
	InTime      *string `json:"inTime"`
	OutTime     *string `json:"outTime"`
	Status      string  `json:"status,omitempty"`
	WorkedHours float64 `json:"workedHours,omitempty"`
}

// AttendanceSummary is the response of the my-summary endpoint.
type AttendanceSummary struct {
	Records []AttendanceRecord `json:"records"`
}

// GeoPunch is the body of a geo check-in or check-out request.
type GeoPunch struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Day parses the record's calendar date, dropping any time component.
func (r AttendanceRecord) Day() (time.Time, error) {
	raw := r.Date
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid record date %q: %w", r.Date, err)
	}
	return d, nil
}

// Open reports whether the record has an in-punch but no out-punch yet.
func (r AttendanceRecord) Open() bool {
	return r.InTime != nil && *r.InTime != "" && (r.OutTime == nil || *r.OutTime == "")
}

// Closed reports whether both punches are present.
func (r AttendanceRecord) Closed() bool {
	return r.InTime != nil && *r.InTime != "" && r.OutTime != nil && *r.OutTime != ""
}

// CheckInAt reconstructs the full check-in moment from the record date and
// the in-time time-of-day field.
func (r AttendanceRecord) CheckInAt() (time.Time, error) {
	day, err := r.Day()
	if err != nil {
		return time.Time{}, err
	}
	if r.InTime == nil {
		return time.Time{}, fmt.Errorf("record %s has no in-time", r.Date)
	}
	h, m, s, err := parseClock(*r.InTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, time.Local), nil
}

// parseClock parses "HH:MM" or "HH:MM:SS".
func parseClock(v string) (h, m, s int, err error) {
	parts := strings.Split(v, ":")
	if len(parts) < 2 {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", v)
	}
	if h, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", v)
	}
	if m, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", v)
	}
	if len(parts) > 2 {
		if s, err = strconv.Atoi(parts[2]); err != nil {
			return 0, 0, 0, fmt.Errorf("invalid time of day %q", v)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, fmt.Errorf("invalid time of day %q", v)
	}
	return h, m, s, nil
}
