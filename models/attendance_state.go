package models

import (
	"time"

	"faceattendance/constants"
)

// Transition is the outcome of marking attendance from a given state.
// Record is nil when nothing has to be written.
type Transition struct {
	Action     string
	Message    string
	Record     *Attendance
	UserStatus constants.AttendanceStatus
}

func (t Transition) Changed() bool {
	return t.Record != nil
}

// AttendanceState định nghĩa trạng thái điểm danh trong một ngày
type AttendanceState interface {
	Name() string
	Mark(userID uint, day, now time.Time) Transition
}

// NoRecordState: chưa điểm danh hôm nay
type NoRecordState struct{}

func (s *NoRecordState) Name() string { return "NO_RECORD" }

func (s *NoRecordState) Mark(userID uint, day, now time.Time) Transition {
	checkIn := now
	return Transition{
		Action:  constants.ActionCheckIn,
		Message: constants.MessageCheckIn,
		Record: &Attendance{
			UserID:      userID,
			Date:        day,
			CheckInTime: &checkIn,
			Status:      constants.StatusPresent,
		},
		UserStatus: constants.StatusPresent,
	}
}

// CheckedInState: đã check-in, chưa check-out
type CheckedInState struct {
	record *Attendance
}

func (s *CheckedInState) Name() string { return "CHECKED_IN" }

func (s *CheckedInState) Mark(userID uint, day, now time.Time) Transition {
	checkOut := now
	if checkOut.Before(*s.record.CheckInTime) {
		checkOut = *s.record.CheckInTime
	}
	updated := *s.record
	updated.CheckOutTime = &checkOut
	return Transition{
		Action:     constants.ActionCheckOut,
		Message:    constants.MessageCheckOut,
		Record:     &updated,
		UserStatus: constants.StatusAbsent,
	}
}

// CheckedOutState is terminal until the next calendar date.
type CheckedOutState struct{}

func (s *CheckedOutState) Name() string { return "CHECKED_OUT" }

func (s *CheckedOutState) Mark(userID uint, day, now time.Time) Transition {
	return Transition{
		Action:  constants.ActionNone,
		Message: constants.MessageAlreadyCheckOut,
	}
}

// StateOf resolves today's state from the stored record (nil when absent).
// A record without a check-in time is treated as closed for the day.
func StateOf(record *Attendance) AttendanceState {
	switch {
	case record == nil:
		return &NoRecordState{}
	case record.CheckInTime != nil && record.CheckOutTime == nil:
		return &CheckedInState{record: record}
	default:
		return &CheckedOutState{}
	}
}
