package services

import (
	"faceattendance/constants"
	"faceattendance/dto"
	"faceattendance/models"
)

func ToUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		DateOfBirth:   u.DateOfBirth.Format(constants.DateLayout),
		Gender:        u.Gender,
		CurrentStatus: string(u.CurrentStatus),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func ToAttendanceResponse(a models.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date.Format(constants.DateLayout),
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
