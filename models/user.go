package models

import (
	"time"

	"faceattendance/constants"
)

type User struct {
	ID            uint                       `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string                     `gorm:"not null" json:"name"`
	Email         string                     `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber   string                     `gorm:"type:varchar(32);not null" json:"phoneNumber"`
	DateOfBirth   time.Time                  `gorm:"type:date;not null" json:"dateOfBirth"`
	Gender        string                     `gorm:"not null" json:"gender"`
	CurrentStatus constants.AttendanceStatus `gorm:"type:varchar(10);not null;default:ABSENT" json:"currentStatus"`
	Attendances   []Attendance               `gorm:"foreignKey:UserID" json:"-"`
}
