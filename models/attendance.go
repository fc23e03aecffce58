package models

import (
	"time"

	"faceattendance/constants"
)

// Attendance is one user's record for one calendar date.
type Attendance struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                  `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID       uint                       `gorm:"not null;uniqueIndex:idx_attendance_user_date" json:"userId"`
	Date         time.Time                  `gorm:"type:date;not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	CheckInTime  *time.Time                 `gorm:"type:timestamptz" json:"checkInTime,omitempty"`
	CheckOutTime *time.Time                 `gorm:"type:timestamptz" json:"checkOutTime,omitempty"`
	Status       constants.AttendanceStatus `gorm:"type:varchar(10);not null;default:PRESENT" json:"status"`
}

func (Attendance) TableName() string {
	return "attendance"
}
