package medicalrecords

import (
	"context"
	"io"
	"mime/multipart"
	"sync"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	AppointmentRepository   contracts.AppointmentRepository
	UserRepository          contracts.UserRepository
	Storage                 contracts.Storage
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	medicalRecordUsecaseInstance contracts.MedicalRecordUsecase
	onceMedicalRecordUsecase     sync.Once
)

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceMedicalRecordUsecase.Do(func() {
		instance := &medicalRecordUsecase{
			MedicalRecordRepository: medicalRecordRepository,
			AppointmentRepository:   appointmentRepository,
			UserRepository:          userRepository,
			Storage:                 storage,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
		medicalRecordUsecaseInstance = instance
	})
	return medicalRecordUsecaseInstance
}

func (uc *medicalRecordUsecase) Upsert(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpsertMedicalRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.writableAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	doctorID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	record := &models.MedicalRecord{
		AppointmentID: appointment.ID,
		Diagnosis:     request.Diagnosis,
		Prescription:  request.Prescription,
		TreatmentPlan: request.TreatmentPlan,
		Notes:         request.Notes,
		FollowUpDate:  request.FollowUpDate,
		VitalSigns:    request.VitalSigns,
		CreatedBy:     doctorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	saved, err := uc.MedicalRecordRepository.Upsert(ctx, record)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.Upsert error saving record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildRecordResponse(ctx, saved)
}

func (uc *medicalRecordUsecase) FindByAppointmentID(ctx context.Context, session *models.Session, appointmentID string) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.FindByAppointmentID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.readableAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	record, err := uc.MedicalRecordRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}
	return uc.buildRecordResponse(ctx, record)
}

func (uc *medicalRecordUsecase) MyMedicalRecords(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.MedicalRecord, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.MyMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	var records []models.MedicalRecord
	switch {
	case session.IsDoctor():
		records, err = uc.MedicalRecordRepository.FindByCreatedBy(ctx, userID)
		if err != nil {
			return nil, 0, err
		}
	case session.IsPatient():
		appointments, _, err := uc.AppointmentRepository.FindByFilter(ctx, &contracts.AppointmentDBFilter{
			PatientID: userID,
			Status:    constvars.AppointmentStatusCompleted,
			Page:      1,
			PageSize:  constvars.MaxPageSize,
		})
		if err != nil {
			return nil, 0, err
		}

		appointmentIDs := make([]primitive.ObjectID, 0, len(appointments))
		for _, appointment := range appointments {
			appointmentIDs = append(appointmentIDs, appointment.ID)
		}

		records, err = uc.MedicalRecordRepository.FindByAppointmentIDs(ctx, appointmentIDs)
		if err != nil {
			return nil, 0, err
		}
	default:
		return nil, 0, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientNotAuthorized)
	}

	total := len(records)
	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	response := make([]responses.MedicalRecord, 0, end-start)
	for i := range records[start:end] {
		recordResponse, err := uc.buildRecordResponse(ctx, &records[start+i])
		if err != nil {
			return nil, 0, err
		}
		response = append(response, *recordResponse)
	}

	uc.Log.Info("medicalRecordUsecase.MyMedicalRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *medicalRecordUsecase) UploadAttachment(ctx context.Context, session *models.Session, appointmentID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.writableAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	record, err := uc.MedicalRecordRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	objectKey := utils.GenerateObjectKey("records", record.ID.Hex(), fileHeader.Filename)
	if err := uc.Storage.UploadFile(ctx, file, fileHeader, objectKey); err != nil {
		uc.Log.Error("medicalRecordUsecase.UploadAttachment error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKeyKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	attachment := &models.RecordAttachment{
		ObjectKey:   objectKey,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
		UploadedAt:  time.Now(),
	}
	if err := uc.MedicalRecordRepository.AppendAttachment(ctx, record.ID, attachment); err != nil {
		return nil, err
	}
	record.Attachments = append(record.Attachments, *attachment)

	uc.Log.Info("medicalRecordUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKeyKey, objectKey),
	)
	return uc.buildRecordResponse(ctx, record)
}

// writableAppointment allows only the doctor on a completed appointment to
// touch its medical record.
func (uc *medicalRecordUsecase) writableAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	if !session.IsDoctor() {
		return nil, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientOnlyDoctorsAllowed)
	}

	appointment, err := uc.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID.Hex() != session.UserID {
		return nil, exceptions.ErrOwnershipMismatch(nil)
	}
	if appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrAppointmentNotCompleted(nil)
	}
	return appointment, nil
}

// readableAppointment lets the patient, the doctor on the appointment, or
// an admin read the record.
func (uc *medicalRecordUsecase) readableAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	switch {
	case session.IsAdmin():
	case session.IsPatient():
		if appointment.PatientID.Hex() != session.UserID {
			return nil, exceptions.ErrOwnershipMismatch(nil)
		}
	case session.IsDoctor():
		if appointment.DoctorID.Hex() != session.UserID {
			return nil, exceptions.ErrOwnershipMismatch(nil)
		}
	default:
		return nil, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientNotAuthorized)
	}
	return appointment, nil
}

func (uc *medicalRecordUsecase) loadAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *medicalRecordUsecase) buildRecordResponse(ctx context.Context, record *models.MedicalRecord) (*responses.MedicalRecord, error) {
	createdByName := ""
	author, err := uc.UserRepository.FindByID(ctx, record.CreatedBy)
	if err == nil && author != nil {
		createdByName = author.FullName
	}

	response := utils.MapMedicalRecordToResponse(record, createdByName)

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	for i := range response.Attachments {
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, response.Attachments[i].ObjectKey, expiry)
		if err != nil {
			continue
		}
		response.Attachments[i].DownloadURL = url
	}
	return response, nil
}
