package store

import (
	"testing"

	"hrtrack/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("k")
	if err != nil || !ok || v != "v1" {
		t.Errorf("Get = (%q, %v, %v), want (v1, true, nil)", v, ok, err)
	}

	// Overwrite
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, _, _ = s.Get("k")
	if v != "v2" {
		t.Errorf("Get after overwrite = %q, want v2", v)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	v, ok, err := s.Get("absent")
	if err != nil || ok || v != "" {
		t.Errorf("Get(absent) = (%q, %v, %v), want (\"\", false, nil)", v, ok, err)
	}
}

func TestMultiSetGetRemove(t *testing.T) {
	s := openTestStore(t)

	pairs := map[string]string{
		"attendance_checkInTimestamp_7":     "1700000000000",
		"attendance_shiftEndTimestamp_7":    "1700030600000",
		"attendance_shiftDurationSeconds_7": "30600",
	}
	if err := s.MultiSet(pairs); err != nil {
		t.Fatalf("MultiSet: %v", err)
	}

	got, err := s.MultiGet(
		"attendance_checkInTimestamp_7",
		"attendance_shiftEndTimestamp_7",
		"attendance_shiftDurationSeconds_7",
		"missing",
	)
	if err != nil {
		t.Fatalf("MultiGet: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("MultiGet returned %d keys, want 3", len(got))
	}
	if got["attendance_shiftDurationSeconds_7"] != "30600" {
		t.Errorf("duration = %q, want 30600", got["attendance_shiftDurationSeconds_7"])
	}

	if err := s.MultiRemove(
		"attendance_checkInTimestamp_7",
		"attendance_shiftEndTimestamp_7",
		"attendance_shiftDurationSeconds_7",
	); err != nil {
		t.Fatalf("MultiRemove: %v", err)
	}
	got, _ = s.MultiGet("attendance_checkInTimestamp_7")
	if len(got) != 0 {
		t.Errorf("keys survived MultiRemove: %v", got)
	}
}

func TestMultiRemoveMissingKeys(t *testing.T) {
	s := openTestStore(t)
	if err := s.MultiRemove("never", "stored"); err != nil {
		t.Errorf("MultiRemove of missing keys errored: %v", err)
	}
}

func TestCredentialsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	user := models.AuthUser{Role: "Employee", EmployeeID: 42, EmployeeCode: "EMP-042", EmployeeName: "Asha Rao"}
	if err := s.SaveCredentials("tok-123", user); err != nil {
		t.Fatalf("SaveCredentials: %v", err)
	}

	token, got, err := s.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if token != "tok-123" || got == nil || *got != user {
		t.Errorf("LoadCredentials = (%q, %+v), want (tok-123, %+v)", token, got, user)
	}
	if s.Token() != "tok-123" {
		t.Errorf("Token() = %q, want tok-123", s.Token())
	}

	if err := s.ClearCredentials(); err != nil {
		t.Fatalf("ClearCredentials: %v", err)
	}
	token, got, _ = s.LoadCredentials()
	if token != "" || got != nil {
		t.Errorf("credentials survived ClearCredentials: (%q, %+v)", token, got)
	}
}

func TestCredentialsMalformedUserData(t *testing.T) {
	s := openTestStore(t)
	if err := s.MultiSet(map[string]string{
		"userToken": "tok",
		"userData":  "{not json",
	}); err != nil {
		t.Fatal(err)
	}
	token, user, err := s.LoadCredentials()
	if err != nil {
		t.Fatalf("LoadCredentials: %v", err)
	}
	if token != "" || user != nil {
		t.Errorf("malformed user data treated as logged in: (%q, %+v)", token, user)
	}
}

func TestLogoutKeepsAttendanceKeys(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveCredentials("tok", models.AuthUser{EmployeeID: 7}); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("attendance_checkInTimestamp_7", "1700000000000"); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearCredentials(); err != nil {
		t.Fatal(err)
	}
	v, ok, _ := s.Get("attendance_checkInTimestamp_7")
	if !ok || v == "" {
		t.Error("attendance key removed by ClearCredentials")
	}
}
