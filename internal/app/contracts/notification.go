package contracts

import (
	"context"

	"myhealthcare-service/internal/app/models"
)

// NotificationService publishes appointment lifecycle events for downstream
// consumers (reminders, SMS, email workers).
type NotificationService interface {
	PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error
}
