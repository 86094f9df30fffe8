package models

import (
	"time"

	"myhealthcare-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RescheduleOrigin records the (date, time) an appointment held before its
// latest reschedule.
type RescheduleOrigin struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

// Appointment occupies one half-hour slot of a doctor's day. The
// (doctor_id, appointment_date, appointment_time) triple is unique among
// booked/confirmed appointments via a partial unique index, which is the
// only double-booking guard.
type Appointment struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PatientID          primitive.ObjectID  `bson:"patient_id" json:"patient_id"`
	DoctorID           primitive.ObjectID  `bson:"doctor_id" json:"doctor_id"`
	DepartmentID       primitive.ObjectID  `bson:"department_id" json:"department_id"`
	ServiceID          *primitive.ObjectID `bson:"service_id,omitempty" json:"service_id,omitempty"`
	RoomID             *primitive.ObjectID `bson:"room_id,omitempty" json:"room_id,omitempty"`
	AppointmentDate    string              `bson:"appointment_date" json:"appointment_date"`
	AppointmentTime    string              `bson:"appointment_time" json:"appointment_time"`
	Status             string              `bson:"status" json:"status"`
	Symptoms           string              `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Reason             string              `bson:"reason,omitempty" json:"reason,omitempty"`
	Notes              string              `bson:"notes,omitempty" json:"notes,omitempty"`
	EstimatedFee       int64               `bson:"estimated_fee" json:"estimated_fee"`
	CancellationReason string              `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time          `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	RescheduledFrom    *RescheduleOrigin   `bson:"rescheduled_from,omitempty" json:"rescheduled_from,omitempty"`
	CreatedAt          time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether no further status transition is allowed.
func (a *Appointment) IsTerminal() bool {
	return a.Status == constvars.AppointmentStatusCompleted ||
		a.Status == constvars.AppointmentStatusCancelled
}

// CanTransitionTo enforces booked -> confirmed -> completed, with
// cancelled reachable from any non-terminal state.
func (a *Appointment) CanTransitionTo(next string) bool {
	if a.IsTerminal() {
		return false
	}
	switch next {
	case constvars.AppointmentStatusConfirmed:
		return a.Status == constvars.AppointmentStatusBooked
	case constvars.AppointmentStatusCompleted:
		return a.Status == constvars.AppointmentStatusConfirmed
	case constvars.AppointmentStatusCancelled:
		return true
	default:
		return false
	}
}

// StartsAt combines the appointment's date and slot into a local time.
func (a *Appointment) StartsAt() (time.Time, error) {
	return time.ParseInLocation(
		constvars.AppointmentDateTimeFormat,
		a.AppointmentDate+" "+a.AppointmentTime,
		time.Local,
	)
}
