package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định danh loại lỗi trả về cho client
type ErrorCode string

const (
	// Not found
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeAttendanceNotFound ErrorCode = "ATTENDANCE_NOT_FOUND"

	// Conflict
	ErrCodeUserExists         ErrorCode = "USER_EXISTS"
	ErrCodeAttendanceConflict ErrorCode = "ATTENDANCE_CONFLICT"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"
	ErrCodeInvalidUserID ErrorCode = "INVALID_USER_ID"

	// Server errors
	ErrCodeDBError  ErrorCode = "DB_ERROR"
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Kind groups error codes the way callers react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
)

var kinds = map[ErrorCode]Kind{
	ErrCodeUserNotFound:       KindNotFound,
	ErrCodeAttendanceNotFound: KindNotFound,
	ErrCodeUserExists:         KindConflict,
	ErrCodeAttendanceConflict: KindConflict,
	ErrCodeValidation:         KindInvalid,
	ErrCodeRequiredField:      KindInvalid,
	ErrCodeInvalidEmail:       KindInvalid,
	ErrCodeInvalidFormat:      KindInvalid,
	ErrCodeInvalidDate:        KindInvalid,
	ErrCodeInvalidUserID:      KindInvalid,
	ErrCodeDBError:            KindInternal,
	ErrCodeInternal:           KindInternal,
}

// AppError là lỗi nghiệp vụ của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind reports the taxonomy bucket of the error code.
func (e *AppError) Kind() Kind {
	if k, ok := kinds[e.Code]; ok {
		return k
	}
	return KindInternal
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ chuỗi lỗi
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf returns KindInternal for anything that is not an AppError.
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind()
	}
	return KindInternal
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool { return KindOf(err) == KindConflict }
func IsInvalid(err error) bool  { return KindOf(err) == KindInvalid }

var (
	ErrUserNotFound       = NewAppError(ErrCodeUserNotFound, "user not found", nil)
	ErrUserAlreadyExists  = NewAppError(ErrCodeUserExists, "user with this email already exists", nil)
	ErrEmailTaken         = NewAppError(ErrCodeUserExists, "email is already taken by another user", nil)
	ErrAttendanceNotFound = NewAppError(ErrCodeAttendanceNotFound, "attendance not found", nil)
	ErrAttendanceConflict = NewAppError(ErrCodeAttendanceConflict, "attendance for today is already being recorded", nil)
	ErrInvalidUserID      = NewAppError(ErrCodeInvalidUserID, "user id is required", nil)
)

// DBError wraps a persistence failure.
func DBError(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}
