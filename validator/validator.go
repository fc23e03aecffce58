package validator

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"faceattendance/constants"
	"faceattendance/dto"
	"faceattendance/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once   sync.Once
	engine *playground.Validate
)

// Engine trả về validator dùng chung, field name lấy theo tag json
func Engine() *playground.Validate {
	once.Do(func() {
		v := playground.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
		engine = v
	})
	return engine
}

// ValidateStruct chạy các tag validate và trả về AppError cho lỗi đầu tiên
func ValidateStruct(s interface{}) error {
	err := Engine().Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(playground.ValidationErrors)
	if !ok || len(errs) == 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid input", err)
	}

	fe := errs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return errors.NewAppError(errors.ErrCodeRequiredField, field+" is required", nil)
	case "email":
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email should be valid", nil)
	case "datetime":
		return errors.NewAppError(errors.ErrCodeInvalidFormat, field+" must be a date in YYYY-MM-DD format", nil)
	default:
		return errors.NewAppError(errors.ErrCodeValidation, field+" is invalid", nil)
	}
}

// ValidateUserRequest trims the request in place, validates it and returns the
// parsed date of birth. today is midnight of the current day in the app zone;
// the date of birth must be strictly before it.
func ValidateUserRequest(req *dto.UserRequest, today time.Time) (time.Time, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	req.Gender = strings.TrimSpace(req.Gender)

	if err := ValidateStruct(req); err != nil {
		return time.Time{}, err
	}

	dob, err := ParseDate(req.DateOfBirth, today.Location())
	if err != nil {
		return time.Time{}, err
	}
	if !dob.Before(today) {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate, "dateOfBirth must be in the past", nil)
	}
	return dob, nil
}

// ParseDate đọc ngày dạng YYYY-MM-DD trong múi giờ loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "date must be in YYYY-MM-DD format", err)
	}
	return d, nil
}

func ValidateUserID(id uint) error {
	if id == 0 {
		return errors.ErrInvalidUserID
	}
	return nil
}
