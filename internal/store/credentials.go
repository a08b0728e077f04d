package store

import (
	"encoding/json"
	"fmt"

	"hrtrack/internal/models"
)

// Attendance session keys are deliberately left alone on logout so an open
// shift survives a re-login.
const (
	keyUserToken = "userToken"
	keyUserData  = "userData"
)

// SaveCredentials stores the bearer token and the logged-in identity.
func (s *Store) SaveCredentials(token string, user models.AuthUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	return s.MultiSet(map[string]string{
		keyUserToken: token,
		keyUserData:  string(data),
	})
}

// LoadCredentials returns the stored token and identity. Both empty when
// nobody is logged in; malformed user data counts as logged out.
func (s *Store) LoadCredentials() (string, *models.AuthUser, error) {
	vals, err := s.MultiGet(keyUserToken, keyUserData)
	if err != nil {
		return "", nil, err
	}
	token := vals[keyUserToken]
	raw, ok := vals[keyUserData]
	if token == "" || !ok {
		return "", nil, nil
	}
	var user models.AuthUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, nil
	}
	return token, &user, nil
}

// ClearCredentials logs the user out locally.
func (s *Store) ClearCredentials() error {
	return s.MultiRemove(keyUserToken, keyUserData)
}

// Token implements the api.TokenSource interface.
func (s *Store) Token() string {
	v, _, err := s.Get(keyUserToken)
	if err != nil {
		return ""
	}
	return v
}
