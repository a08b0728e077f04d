package parser

import (
	"testing"
	"time"
)

func TestParseLeaveDateISO(t *testing.T) {
	d, err := ParseLeaveDate("2026-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseLeaveDateSlash(t *testing.T) {
	d, err := ParseLeaveDate("09/03/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseLeaveDateToday(t *testing.T) {
	d, err := ParseLeaveDate("today")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseLeaveDateRelative(t *testing.T) {
	d, err := ParseLeaveDate("2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 14)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseLeaveDateInvalid(t *testing.T) {
	for _, input := range []string{"", "soon", "31/02/2026", "0 days", "400 days", "13/13/2026"} {
		if _, err := ParseLeaveDate(input); err == nil {
			t.Errorf("ParseLeaveDate(%q) succeeded, want error", input)
		}
	}
}
