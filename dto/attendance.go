package dto

import "time"

type MarkAttendanceRequest struct {
	UserID uint `json:"userId" validate:"required"`
}

type AttendanceResponse struct {
	ID           uint       `json:"id"`
	UserID       uint       `json:"userId"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// MarkAttendanceResponse carries the outcome message and today's record
// as it stands after the call.
type MarkAttendanceResponse struct {
	Message    string              `json:"message"`
	Action     string              `json:"action"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

// HistoryQuery bounds are inclusive calendar dates; empty means open.
type HistoryQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
