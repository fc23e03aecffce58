package dto

import "time"

// UserRequest is the body of register and update calls.
type UserRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,email"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"notblank"`
}

// UserResponse định nghĩa response cho user
type UserResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	DateOfBirth   string    `json:"dateOfBirth"`
	Gender        string    `json:"gender"`
	CurrentStatus string    `json:"currentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
