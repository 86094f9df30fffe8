package contracts

import (
	"context"

	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	FindByFilter(ctx context.Context, filter *AppointmentDBFilter) ([]models.Appointment, int, error)
	FindBookedTimesByDoctorDate(ctx context.Context, doctorID primitive.ObjectID, date string) ([]string, error)
	FindDistinctPatientIDsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]primitive.ObjectID, error)
	FindLastCompletedByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (*models.Appointment, error)
	CountByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (int, error)
}

// AppointmentDBFilter narrows appointment queries. Zero values mean "any".
type AppointmentDBFilter struct {
	PatientID primitive.ObjectID
	DoctorID  primitive.ObjectID
	Status    string
	DateFrom  string
	DateTo    string
	Page      int
	PageSize  int
}

type AppointmentUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	FindAll(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter) ([]responses.Appointment, int, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error)
	Reschedule(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error)
	Confirm(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	Complete(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	AssignService(ctx context.Context, session *models.Session, appointmentID string, request *requests.AssignService) (*responses.AssignService, error)
	MyPatients(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.MyPatient, int, error)
}
