package utils

import (
	"time"

	"myhealthcare-service/internal/pkg/constvars"
)

func ParseAppointmentDate(date string) (time.Time, error) {
	return time.ParseInLocation(constvars.AppointmentDateFormat, date, time.Local)
}

func ParseAppointmentDateTime(date, slot string) (time.Time, error) {
	return time.ParseInLocation(constvars.AppointmentDateTimeFormat, date+" "+slot, time.Local)
}

// TruncateToDay drops the clock portion in the local timezone.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
