package constants

// AttendanceStatus is stored on both users and attendance rows.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Result messages of a mark attendance call
const (
	MessageCheckIn         = "Check-in successful"
	MessageCheckOut        = "Check-out successful"
	MessageAlreadyCheckOut = "Already checked out for today"
	MessageOpenCheckIn     = "Checked in yesterday without checking out"
)

// Mark actions
const (
	ActionCheckIn  = "CHECK_IN"
	ActionCheckOut = "CHECK_OUT"
	ActionNone     = "NONE"

	// ActionOpenCheckIn is broadcast at midnight, never returned by a mark.
	ActionOpenCheckIn = "OPEN_CHECK_IN"
)

const DateLayout = "2006-01-02"
