package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicalRecordRepository interface {
	Upsert(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.MedicalRecord, error)
	FindByAppointmentIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.MedicalRecord, error)
	FindByCreatedBy(ctx context.Context, doctorID primitive.ObjectID) ([]models.MedicalRecord, error)
	AppendAttachment(ctx context.Context, recordID primitive.ObjectID, attachment *models.RecordAttachment) error
}

type MedicalRecordUsecase interface {
	Upsert(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpsertMedicalRecord) (*responses.MedicalRecord, error)
	FindByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.MedicalRecord, error)
	MyMedicalRecords(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.MedicalRecord, int, error)
	UploadAttachment(ctx context.Context, session *models.Session, appointmentID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.MedicalRecord, error)
}
