package models

import (
	"testing"
	"time"
)

func strp(s string) *string { return &s }

func TestRecordOpenClosed(t *testing.T) {
	tests := []struct {
		name   string
		rec    AttendanceRecord
		open   bool
		closed bool
	}{
		{"both punches", AttendanceRecord{InTime: strp("09:00:00"), OutTime: strp("17:30:00")}, false, true},
		{"in only", AttendanceRecord{InTime: strp("09:00:00")}, true, false},
		{"in set, out empty", AttendanceRecord{InTime: strp("09:00:00"), OutTime: strp("")}, true, false},
		{"no punches", AttendanceRecord{}, false, false},
		{"empty in", AttendanceRecord{InTime: strp("")}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Open(); got != tt.open {
				t.Errorf("Open() = %v, want %v", got, tt.open)
			}
			if got := tt.rec.Closed(); got != tt.closed {
				t.Errorf("Closed() = %v, want %v", got, tt.closed)
			}
		})
	}
}

func TestDayStripsTimeComponent(t *testing.T) {
	rec := AttendanceRecord{Date: "2026-03-04T00:00:00"}
	day, err := rec.Day()
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
	if !day.Equal(want) {
		t.Errorf("Day() = %v, want %v", day, want)
	}

	// Plain dates work too.
	rec = AttendanceRecord{Date: "2026-03-04"}
	if day, err = rec.Day(); err != nil || !day.Equal(want) {
		t.Errorf("Day() = (%v, %v), want (%v, nil)", day, err, want)
	}
}

func TestCheckInAt(t *testing.T) {
	rec := AttendanceRecord{Date: "2026-03-04T00:00:00", InTime: strp("09:15:30")}
	got, err := rec.CheckInAt()
	if err != nil {
		t.Fatalf("CheckInAt: %v", err)
	}
	want := time.Date(2026, 3, 4, 9, 15, 30, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("CheckInAt() = %v, want %v", got, want)
	}

	// Seconds are optional in the server's time-of-day format.
	rec.InTime = strp("09:15")
	got, err = rec.CheckInAt()
	if err != nil {
		t.Fatalf("CheckInAt without seconds: %v", err)
	}
	want = time.Date(2026, 3, 4, 9, 15, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("CheckInAt() = %v, want %v", got, want)
	}
}

func TestCheckInAtErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  AttendanceRecord
	}{
		{"bad date", AttendanceRecord{Date: "yesterday", InTime: strp("09:00:00")}},
		{"missing in-time", AttendanceRecord{Date: "2026-03-04"}},
		{"bad clock", AttendanceRecord{Date: "2026-03-04", InTime: strp("9am")}},
		{"hour out of range", AttendanceRecord{Date: "2026-03-04", InTime: strp("25:00:00")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.rec.CheckInAt(); err == nil {
				t.Error("CheckInAt() = nil error, want failure")
			}
		})
	}
}
