package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"hrtrack/internal/models"
)

// GeoCheckIn submits a geo-located check-in. The server's recorded time is
// authoritative; callers re-sync instead of reading the response.
func (c *Client) GeoCheckIn(ctx context.Context, punch models.GeoPunch) error {
	return c.do(ctx, http.MethodPost, "/attendance/geo-checkin", nil, punch, nil)
}

// GeoCheckOut submits a geo-located check-out.
func (c *Client) GeoCheckOut(ctx context.Context, punch models.GeoPunch) error {
	return c.do(ctx, http.MethodPost, "/attendance/geo-checkout", nil, punch, nil)
}

// MySummary fetches the current user's attendance records for the inclusive
// date range [from, to]; both are YYYY-MM-DD.
func (c *Client) MySummary(ctx context.Context, from, to string) (*models.AttendanceSummary, error) {
	q := url.Values{}
	q.Set("fromDate", from)
	q.Set("toDate", to)
	var summary models.AttendanceSummary
	if err := c.do(ctx, http.MethodGet, "/Attendance/my-summary", q, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// EmployeeSummary fetches another employee's records for the range (HR view).
func (c *Client) EmployeeSummary(ctx context.Context, employeeID int, from, to string) (*models.AttendanceSummary, error) {
	q := url.Values{}
	q.Set("fromDate", from)
	q.Set("toDate", to)
	var summary models.AttendanceSummary
	path := fmt.Sprintf("/Attendance/employee-summary/%d", employeeID)
	if err := c.do(ctx, http.MethodGet, path, q, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
