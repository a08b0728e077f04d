package api

import (
	"context"
	"net/http"

	"hrtrack/internal/models"
)

// Login exchanges credentials for a bearer token and the user's identity.
func (c *Client) Login(ctx context.Context, userID, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := models.LoginRequest{UserID: userID, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
