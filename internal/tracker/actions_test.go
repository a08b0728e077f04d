package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrtrack/internal/geo"
	"hrtrack/internal/models"
)

func TestCheckInPermissionDenied(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 0, 0, 0, time.Local)
	api := &fakeAPI{}
	tr, _, notify := newTestTracker(api, newFakeKV(), now)
	defer tr.Close()
	tr.geo = &fakeGeo{permErr: geo.ErrPermissionDenied}
	tr.Bootstrap("42")

	tr.CheckIn(context.Background())

	if api.checkInCalls != 0 {
		t.Errorf("check-in API called %d times despite denied permission", api.checkInCalls)
	}
	if s := tr.Session(); s.Status != NotCheckedIn {
		t.Errorf("status = %v, want unchanged NotCheckedIn", s.Status)
	}
	if len(notify.errors) != 1 {
		t.Errorf("error notices = %d, want 1", len(notify.errors))
	}
	if s := tr.Session(); s.Loading {
		t.Error("loading flag not released")
	}
}

func TestCheckInLocationFailure(t *testing.T) {
	api := &fakeAPI{}
	tr, _, notify := newTestTracker(api, newFakeKV(), time.Now())
	defer tr.Close()
	tr.geo = &fakeGeo{posErr: errors.New("gps unavailable")}
	tr.Bootstrap("42")

	tr.CheckIn(context.Background())

	if api.checkInCalls != 0 {
		t.Errorf("check-in API called %d times despite location failure", api.checkInCalls)
	}
	if len(notify.errors) != 1 {
		t.Errorf("error notices = %d, want 1", len(notify.errors))
	}
}

func TestCheckInAPIFailure(t *testing.T) {
	api := &fakeAPI{punchErr: errors.New("server error")}
	tr, _, notify := newTestTracker(api, newFakeKV(), time.Now())
	defer tr.Close()
	tr.Bootstrap("42")

	tr.CheckIn(context.Background())

	if s := tr.Session(); s.Status != NotCheckedIn {
		t.Errorf("status = %v, want unchanged on API failure", s.Status)
	}
	if len(notify.errors) != 1 || len(notify.successes) != 0 {
		t.Errorf("notices = %d errors / %d successes, want 1/0", len(notify.errors), len(notify.successes))
	}
	if api.summaryCalls != 0 {
		t.Error("sync ran after a failed check-in")
	}
}

func TestCheckInSuccessSyncsFromServer(t *testing.T) {
	// The server reports an open record whose in-time differs from the
	// client clock; the server wins.
	now := time.Date(2026, 3, 4, 9, 2, 30, 0, time.Local)
	api := &fakeAPI{summary: &models.AttendanceSummary{Records: []models.AttendanceRecord{
		{Date: "2026-03-04T00:00:00", InTime: strptr("09:02:07")},
	}}}
	tr, _, notify := newTestTracker(api, newFakeKV(), now)
	defer tr.Close()
	tr.Bootstrap("42")

	tr.CheckIn(context.Background())

	if api.checkInCalls != 1 || api.summaryCalls != 1 {
		t.Fatalf("calls = %d check-in / %d summary, want 1/1", api.checkInCalls, api.summaryCalls)
	}
	s := tr.Session()
	wantIn := time.Date(2026, 3, 4, 9, 2, 7, 0, time.Local)
	if s.Status != CheckedIn || s.CheckInTime == nil || !s.CheckInTime.Equal(wantIn) {
		t.Errorf("session = %+v, want CheckedIn at server time %v", s, wantIn)
	}
	if len(notify.successes) != 1 {
		t.Errorf("success notices = %d, want 1", len(notify.successes))
	}
}

func TestCheckOutClearsAndVerifies(t *testing.T) {
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.Local)
	api := &fakeAPI{summary: &models.AttendanceSummary{Records: []models.AttendanceRecord{
		{Date: "2026-03-04T00:00:00", InTime: strptr("09:00:00"), OutTime: strptr("18:00:00")},
	}}}
	kv := newFakeKV()
	seedSession(kv, "42", now.Add(-9*time.Hour), now.Add(-30*time.Minute))

	tr, _, notify := newTestTracker(api, kv, now)
	defer tr.Close()
	tr.Bootstrap("42")

	tr.CheckOut(context.Background())

	if api.checkOutCalls != 1 {
		t.Fatalf("check-out API called %d times, want 1", api.checkOutCalls)
	}
	s := tr.Session()
	if s.Status != CheckedOut {
		t.Errorf("status = %v, want CheckedOut", s.Status)
	}
	if kv.len() != 0 {
		t.Errorf("persisted entries not removed, %d keys left", kv.len())
	}
	if api.summaryCalls != 1 {
		t.Errorf("verification sync ran %d times, want 1", api.summaryCalls)
	}
	if len(notify.successes) != 1 {
		t.Errorf("success notices = %d, want 1", len(notify.successes))
	}
}

func TestCheckOutFailureKeepsSession(t *testing.T) {
	now := time.Date(2026, 3, 4, 15, 0, 0, 0, time.Local)
	checkIn := now.Add(-6 * time.Hour)
	shiftEnd := checkIn.Add(8*time.Hour + 30*time.Minute)
	kv := newFakeKV()
	seedSession(kv, "42", checkIn, shiftEnd)

	api := &fakeAPI{punchErr: errors.New("server error")}
	tr, _, notify := newTestTracker(api, kv, now)
	defer tr.Close()
	tr.Bootstrap("42")

	tr.CheckOut(context.Background())

	s := tr.Session()
	if s.Status != CheckedIn {
		t.Errorf("status = %v, want CheckedIn preserved on failure", s.Status)
	}
	if kv.len() != 3 {
		t.Errorf("persisted entries changed on failure, %d keys", kv.len())
	}
	if len(notify.errors) != 1 {
		t.Errorf("error notices = %d, want 1", len(notify.errors))
	}
}
