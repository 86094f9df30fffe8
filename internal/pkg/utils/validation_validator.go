package utils

import (
	"regexp"
	"time"

	"myhealthcare-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("time_slot", validateTimeSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RolePatient
}

// A valid slot starts on a half-hour boundary between 08:00 and 16:30 inclusive.
func validateTimeSlot(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(constvars.AppointmentTimeFormat, fl.Field().String())
	if err != nil {
		return false
	}
	if parsed.Minute() != 0 && parsed.Minute() != constvars.SlotStepMinutes {
		return false
	}
	if parsed.Hour() < constvars.SlotStartHour {
		return false
	}
	if parsed.Hour() > constvars.SlotEndHour {
		return false
	}
	if parsed.Hour() == constvars.SlotEndHour && parsed.Minute() > constvars.SlotEndMinute {
		return false
	}
	return true
}
