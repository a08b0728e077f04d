package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrtrack/internal/models"
)

type fakeCreds struct {
	token   string
	cleared bool
}

func (f *fakeCreds) Token() string { return f.token }

func (f *fakeCreds) ClearCredentials() error {
	f.cleared = true
	f.token = ""
	return nil
}

func newTestClient(handler http.Handler, token string) (*Client, *fakeCreds, func()) {
	srv := httptest.NewServer(handler)
	creds := &fakeCreds{token: token}
	return New(srv.URL, creds), creds, srv.Close
}

func TestLogin(t *testing.T) {
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("got %s %s, want POST /auth/login", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(models.LoginResponse{
			Token:        "tok-abc",
			Role:         "Employee",
			EmployeeID:   42,
			EmployeeCode: "EMP-042",
			EmployeeName: "Asha Rao",
		})
	})
	client, _, closeSrv := newTestClient(handler, "")
	defer closeSrv()

	resp, err := client.Login(context.Background(), "asha", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-abc" || resp.EmployeeID != 42 {
		t.Errorf("Login response = %+v", resp)
	}
	// The backend expects Pascal-cased credential fields.
	if gotBody["UserId"] != "asha" || gotBody["Password"] != "s3cret" {
		t.Errorf("request body = %v, want UserId/Password fields", gotBody)
	}
}

func TestRequestHeaders(t *testing.T) {
	var auth, requestID, contentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	})
	client, _, closeSrv := newTestClient(handler, "tok-xyz")
	defer closeSrv()

	if err := client.GeoCheckIn(context.Background(), models.GeoPunch{Latitude: 12.9, Longitude: 77.6, Accuracy: 15}); err != nil {
		t.Fatalf("GeoCheckIn: %v", err)
	}
	if auth != "Bearer tok-xyz" {
		t.Errorf("Authorization = %q, want Bearer tok-xyz", auth)
	}
	if requestID == "" {
		t.Error("X-Request-ID header not set")
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", contentType)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var auth string
	var hasAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, hasAuth = r.Header.Get("Authorization"), r.Header.Get("Authorization") != ""
		json.NewEncoder(w).Encode(models.LoginResponse{})
	})
	client, _, closeSrv := newTestClient(handler, "")
	defer closeSrv()

	if _, err := client.Login(context.Background(), "u", "p"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if hasAuth {
		t.Errorf("Authorization = %q, want unset before login", auth)
	}
}

func TestGeoCheckInBody(t *testing.T) {
	var got models.GeoPunch
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/attendance/geo-checkin" {
			t.Errorf("path = %s, want /attendance/geo-checkin", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	})
	client, _, closeSrv := newTestClient(handler, "tok")
	defer closeSrv()

	punch := models.GeoPunch{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 15}
	if err := client.GeoCheckIn(context.Background(), punch); err != nil {
		t.Fatalf("GeoCheckIn: %v", err)
	}
	if got != punch {
		t.Errorf("server received %+v, want %+v", got, punch)
	}
}

func TestMySummaryQuery(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Attendance/my-summary" {
			t.Errorf("path = %s, want /Attendance/my-summary", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("fromDate") != "2026-03-02" || q.Get("toDate") != "2026-03-04" {
			t.Errorf("query = %v, want fromDate=2026-03-02 toDate=2026-03-04", q)
		}
		in := "09:00:00"
		json.NewEncoder(w).Encode(models.AttendanceSummary{Records: []models.AttendanceRecord{
			{Date: "2026-03-04T00:00:00", InTime: &in},
		}})
	})
	client, _, closeSrv := newTestClient(handler, "tok")
	defer closeSrv()

	summary, err := client.MySummary(context.Background(), "2026-03-02", "2026-03-04")
	if err != nil {
		t.Fatalf("MySummary: %v", err)
	}
	if len(summary.Records) != 1 || !summary.Records[0].Open() {
		t.Errorf("summary = %+v, want one open record", summary)
	}
}

func TestEmployeeSummaryPath(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Attendance/employee-summary/17" {
			t.Errorf("path = %s, want /Attendance/employee-summary/17", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.AttendanceSummary{})
	})
	client, _, closeSrv := newTestClient(handler, "tok")
	defer closeSrv()

	if _, err := client.EmployeeSummary(context.Background(), 17, "2026-03-01", "2026-03-07"); err != nil {
		t.Fatalf("EmployeeSummary: %v", err)
	}
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client, creds, closeSrv := newTestClient(handler, "stale")
	defer closeSrv()

	_, err := client.MySummary(context.Background(), "2026-03-01", "2026-03-02")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if !creds.cleared {
		t.Error("credentials not cleared on 401")
	}
}

func TestServerErrorMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "outside office geofence"})
	})
	client, creds, closeSrv := newTestClient(handler, "tok")
	defer closeSrv()

	err := client.GeoCheckIn(context.Background(), models.GeoPunch{Latitude: 1, Longitude: 1, Accuracy: 5})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "outside office geofence" {
		t.Errorf("APIError = %+v", apiErr)
	}
	if creds.cleared {
		t.Error("credentials cleared on non-401 error")
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client, _, closeSrv := newTestClient(handler, "tok")
	defer closeSrv()

	err := client.GeoCheckOut(context.Background(), models.GeoPunch{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Error() != "server returned status 500" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}
