package api

import (
	"context"
	"fmt"
	"net/http"

	"hrtrack/internal/models"
)

// MyProfile fetches the current user's profile.
func (c *Client) MyProfile(ctx context.Context) (*models.Employee, error) {
	var emp models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees/my-profile", nil, nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// Employees lists the whole directory (HR view).
func (c *Client) Employees(ctx context.Context) ([]models.Employee, error) {
	var emps []models.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, nil, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// Employee fetches a single directory entry.
func (c *Client) Employee(ctx context.Context, id int) (*models.Employee, error) {
	var emp models.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// CreateEmployee adds a directory entry (HR only).
func (c *Client) CreateEmployee(ctx context.Context, emp models.NewEmployee) error {
	return c.do(ctx, http.MethodPost, "/employees", nil, emp, nil)
}
