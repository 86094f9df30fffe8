package utils

import (
	"strings"

	"myhealthcare-service/internal/pkg/dto/requests"
)

func SanitizeRegisterRequest(input *requests.Register) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.DepartmentID = strings.TrimSpace(input.DepartmentID)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.AppointmentTime = strings.TrimSpace(input.AppointmentTime)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
	input.Reason = strings.TrimSpace(input.Reason)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointment) {
	input.NewDate = strings.TrimSpace(input.NewDate)
	input.NewTime = strings.TrimSpace(input.NewTime)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeSuggestDepartmentRequest(input *requests.SuggestDepartment) {
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}
