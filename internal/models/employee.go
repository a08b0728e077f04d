package models

// Employee is a directory entry; the same shape serves the my-profile view.
type Employee struct {
	ID           int    `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	JoiningDate  string `json:"joiningDate,omitempty"`
	Status       string `json:"status,omitempty"`
}

// NewEmployee is the body for creating a directory entry (HR only).
type NewEmployee struct {
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	JoiningDate  string `json:"joiningDate,omitempty"`
}
