package api

import (
	"context"
	"fmt"
	"net/http"

	"hrtrack/internal/models"
)

// MyLeaves lists the current user's leave requests.
func (c *Client) MyLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.do(ctx, http.MethodGet, "/Leave/my", nil, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// PendingLeaves lists leave requests awaiting a decision (HR view).
func (c *Client) PendingLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest
	if err := c.do(ctx, http.MethodGet, "/Leave/pending", nil, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// ApplyLeave submits a new leave request.
func (c *Client) ApplyLeave(ctx context.Context, app models.LeaveApplication) error {
	return c.do(ctx, http.MethodPost, "/Leave", nil, app, nil)
}

// DecideLeave approves or rejects a pending leave request (HR only).
func (c *Client) DecideLeave(ctx context.Context, id int, approve bool) error {
	path := fmt.Sprintf("/Leave/%d/approve", id)
	return c.do(ctx, http.MethodPost, path, nil, models.LeaveDecision{Approve: approve}, nil)
}
