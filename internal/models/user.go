package models

// AuthUser is the identity returned by a successful login, cached locally
// alongside the bearer token.
type AuthUser struct {
	Role         string `json:"role"` // "Employee" or "HR"
	EmployeeID   int    `json:"employeeId"`
	EmployeeCode string `json:"employeeCode"`
	EmployeeName string `json:"employeeName"`
}

// LoginRequest matches the backend's field casing.
type LoginRequest struct {
	UserID   string `json:"UserId"`
	Password string `json:"Password"`
}

// LoginResponse is the login endpoint's payload.
type LoginResponse struct {
	Token        string `json:"token"`
	Role         string `json:"role"`
	EmployeeID   int    `json:"employeeId"`
	EmployeeCode string `json:"employeeCode"`
	EmployeeName string `json:"employeeName"`
}

// User returns the identity part of the login response.
func (r LoginResponse) User() AuthUser {
	return AuthUser{
		Role:         r.Role,
		EmployeeID:   r.EmployeeID,
		EmployeeCode: r.EmployeeCode,
		EmployeeName: r.EmployeeName,
	}
}

// IsHR reports whether the user has the HR role.
func (u AuthUser) IsHR() bool {
	return u.Role == "HR"
}
