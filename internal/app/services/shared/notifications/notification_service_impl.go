package notifications

import (
	"context"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// appointmentEvent is the queue payload consumed by reminder workers.
type appointmentEvent struct {
	EventType       string `json:"event_type"`
	AppointmentID   string `json:"appointment_id"`
	PatientID       string `json:"patient_id"`
	DoctorID        string `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	OccurredAt      string `json:"occurred_at"`
}

type notificationService struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

func NewNotificationService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotificationService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &notificationService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *notificationService) PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error {
	event := appointmentEvent{
		EventType:       eventType,
		AppointmentID:   appointment.ID.Hex(),
		PatientID:       appointment.PatientID.Hex(),
		DoctorID:        appointment.DoctorID.Hex(),
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          appointment.Status,
		OccurredAt:      time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	s.Log.Info("appointment event published",
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
		zap.String("event_type", eventType),
	)
	return nil
}
