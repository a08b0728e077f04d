package models

// LeaveRequest is a leave entry as returned by the Leave endpoints.
type LeaveRequest struct {
	ID            int       `json:"id"`
	LeaveType     string    `json:"leaveType"`
	StartDate     string    `json:"startDate"` // YYYY-MM-DD
	EndDate       string    `json:"endDate"`
	TotalDays     float64   `json:"totalDays"`
	Reason        string    `json:"reason"`
	OverallStatus string    `json:"overallStatus"` // Pending / Approved / Rejected
	Employee      *Employee `json:"employee,omitempty"`
}

// LeaveApplication is the body of a new leave request.
type LeaveApplication struct {
	LeaveType string `json:"leaveType"` // FullDay / HalfDay
	StartDate string `json:"startDate"` // YYYY-MM-DD
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// LeaveDecision approves or rejects a pending leave.
type LeaveDecision struct {
	Approve bool `json:"approve"`
}
