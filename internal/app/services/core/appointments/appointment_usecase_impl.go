package appointments

import (
	"context"
	"fmt"
	"strings"
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

// Appointment lifecycle event types published to the notifications queue.
const (
	EventAppointmentCreated     = "appointment.created"
	EventAppointmentCancelled   = "appointment.cancelled"
	EventAppointmentRescheduled = "appointment.rescheduled"
	EventAppointmentConfirmed   = "appointment.confirmed"
	EventAppointmentCompleted   = "appointment.completed"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	ServiceRepository     contracts.ServiceRepository
	RoomRepository        contracts.RoomRepository
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	serviceRepository contracts.ServiceRepository,
	roomRepository contracts.RoomRepository,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			UserRepository:        userRepository,
			DepartmentRepository:  departmentRepository,
			ServiceRepository:     serviceRepository,
			RoomRepository:        roomRepository,
			NotificationService:   notificationService,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
		zap.String(constvars.LoggingTimeKey, request.AppointmentTime),
	)

	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientOnlyPatientsCanBook)
	}

	if err := uc.validateBookingWindow(request.AppointmentDate, request.AppointmentTime); err != nil {
		return nil, err
	}

	departmentID, err := primitive.ObjectIDFromHex(request.DepartmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	doctorID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctor, err := uc.UserRepository.FindDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Doctor == nil || doctor.Doctor.DepartmentID != departmentID {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	patientID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		DepartmentID:    departmentID,
		RoomID:          uc.resolveRoomID(ctx, doctor),
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusBooked,
		Symptoms:        request.Symptoms,
		Reason:          request.Reason,
		Notes:           request.Notes,
		EstimatedFee:    department.HealthExaminationFee,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	appointment, err = uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, requestID, EventAppointmentCreated, appointment)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, filter *requests.AppointmentFilter) ([]responses.Appointment, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, filter.Status),
	)

	dbFilter := &contracts.AppointmentDBFilter{
		Status:   filter.Status,
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	userID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}
	switch {
	case session.IsPatient():
		dbFilter.PatientID = userID
	case session.IsDoctor():
		dbFilter.DoctorID = userID
	}

	appointments, total, err := uc.AppointmentRepository.FindByFilter(ctx, dbFilter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		appointmentResponse, err := uc.buildAppointmentResponse(ctx, &appointments[i])
		if err != nil {
			return nil, 0, err
		}
		response = append(response, *appointmentResponse)
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, total, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(constvars.AppointmentStatusCancelled) {
		return nil, exceptions.ErrStatusTransition(nil, fmt.Sprintf("cannot cancel an appointment in status '%s'", appointment.Status))
	}

	// Admins and doctors may cancel at any time. Patients are bound to the
	// 24 hour window.
	if session.IsPatient() {
		startsAt, err := appointment.StartsAt()
		if err != nil {
			return nil, exceptions.ErrInvalidDateFormat(err)
		}
		now := time.Now()
		if startsAt.Before(now) {
			return nil, exceptions.ErrAppointmentInPast(nil)
		}
		if startsAt.Sub(now) < time.Duration(constvars.CancellationWindowInHours)*time.Hour {
			return nil, exceptions.ErrCancellationWindow(nil)
		}
	}

	now := time.Now()
	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.CancellationReason = request.Reason
	appointment.CancelledAt = &now
	appointment.UpdatedAt = now

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Cancel error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, requestID, EventAppointmentCancelled, appointment)

	uc.Log.Info("appointmentUsecase.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) Reschedule(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, request.NewDate),
		zap.String(constvars.LoggingTimeKey, request.NewTime),
	)

	appointment, err := uc.findOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.IsTerminal() {
		return nil, exceptions.ErrStatusTransition(nil, fmt.Sprintf("cannot reschedule an appointment in status '%s'", appointment.Status))
	}

	if err := uc.validateBookingWindow(request.NewDate, request.NewTime); err != nil {
		return nil, err
	}

	appointment.RescheduledFrom = &models.RescheduleOrigin{
		Date: appointment.AppointmentDate,
		Time: appointment.AppointmentTime,
	}
	appointment.AppointmentDate = request.NewDate
	appointment.AppointmentTime = request.NewTime
	appointment.Status = constvars.AppointmentStatusBooked
	if request.Reason != "" {
		note := "Reschedule reason: " + request.Reason
		if appointment.Notes == "" {
			appointment.Notes = note
		} else {
			appointment.Notes = strings.TrimRight(appointment.Notes, "\n") + "\n" + note
		}
	}
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.Reschedule error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, requestID, EventAppointmentRescheduled, appointment)

	uc.Log.Info("appointmentUsecase.Reschedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) Confirm(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	return uc.transition(ctx, session, appointmentID, constvars.AppointmentStatusConfirmed, EventAppointmentConfirmed)
}

func (uc *appointmentUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	return uc.transition(ctx, session, appointmentID, constvars.AppointmentStatusCompleted, EventAppointmentCompleted)
}

func (uc *appointmentUsecase) transition(ctx context.Context, session *models.Session, appointmentID, nextStatus, eventType string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.transition called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, nextStatus),
	)

	if !session.IsDoctor() && !session.IsAdmin() {
		return nil, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientOnlyDoctorsAllowed)
	}

	appointment, err := uc.findOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(nextStatus) {
		return nil, exceptions.ErrStatusTransition(nil, fmt.Sprintf("cannot move an appointment from status '%s' to '%s'", appointment.Status, nextStatus))
	}

	appointment.Status = nextStatus
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.transition error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, requestID, eventType, appointment)
	return uc.buildAppointmentResponse(ctx, appointment)
}

func (uc *appointmentUsecase) AssignService(ctx context.Context, session *models.Session, appointmentID string, request *requests.AssignService) (*responses.AssignService, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.AssignService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingServiceIDKey, request.ServiceID),
	)

	if !session.IsDoctor() && !session.IsAdmin() {
		return nil, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientOnlyDoctorsAllowed)
	}

	appointment, err := uc.findOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.Status != constvars.AppointmentStatusConfirmed && appointment.Status != constvars.AppointmentStatusCompleted {
		return nil, exceptions.ErrStatusTransition(nil, fmt.Sprintf("cannot assign a service to an appointment in status '%s'", appointment.Status))
	}

	serviceID, err := primitive.ObjectIDFromHex(request.ServiceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	service, err := uc.ServiceRepository.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	if service.DepartmentID != appointment.DepartmentID {
		return nil, exceptions.ErrServiceWrongDepartment(nil)
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, appointment.DepartmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	appointment.ServiceID = &serviceID
	appointment.EstimatedFee = department.HealthExaminationFee + service.Price
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.Update(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.AssignService error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentResponse, err := uc.buildAppointmentResponse(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.AssignService succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.AssignService{
		Appointment: *appointmentResponse,
		FeeBreakdown: responses.FeeBreakdown{
			HealthExaminationFee: department.HealthExaminationFee,
			ServiceFee:           service.Price,
			TotalFee:             appointment.EstimatedFee,
		},
	}, nil
}

func (uc *appointmentUsecase) MyPatients(ctx context.Context, session *models.Session, pagination *requests.Pagination) ([]responses.MyPatient, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.MyPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsDoctor() {
		return nil, 0, exceptions.ErrRoleNotPermitted(nil, constvars.ErrClientOnlyDoctorsAllowed)
	}

	doctorID, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	patientIDs, err := uc.AppointmentRepository.FindDistinctPatientIDsByDoctor(ctx, doctorID)
	if err != nil {
		return nil, 0, err
	}

	total := len(patientIDs)
	start := (pagination.Page - 1) * pagination.PageSize
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}

	patients, err := uc.UserRepository.FindByIDs(ctx, patientIDs[start:end])
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.MyPatient, 0, len(patients))
	for i := range patients {
		patient := &patients[i]
		count, err := uc.AppointmentRepository.CountByDoctorPatient(ctx, doctorID, patient.ID)
		if err != nil {
			return nil, 0, err
		}
		entry := responses.MyPatient{
			ID:               patient.ID.Hex(),
			FullName:         patient.FullName,
			Email:            patient.Email,
			AppointmentCount: count,
		}
		lastVisit, err := uc.AppointmentRepository.FindLastCompletedByDoctorPatient(ctx, doctorID, patient.ID)
		if err != nil {
			return nil, 0, err
		}
		if lastVisit != nil {
			entry.LastVisitDate = lastVisit.AppointmentDate
		}
		response = append(response, entry)
	}

	uc.Log.Info("appointmentUsecase.MyPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(response)),
	)
	return response, total, nil
}

// validateBookingWindow rejects dates in the past, dates more than 30 days
// ahead, and slots that already started today.
func (uc *appointmentUsecase) validateBookingWindow(date, slotTime string) error {
	requestedDate, err := utils.ParseAppointmentDate(date)
	if err != nil {
		return exceptions.ErrInvalidDateFormat(err)
	}

	now := time.Now()
	today := utils.TruncateToDay(now)
	if requestedDate.Before(today) {
		return exceptions.ErrDateInPast(nil)
	}
	if requestedDate.After(today.AddDate(0, 0, constvars.BookingMaxDaysAhead)) {
		return exceptions.ErrDateTooFarAhead(nil)
	}
	if requestedDate.Equal(today) {
		startsAt, err := utils.ParseAppointmentDateTime(date, slotTime)
		if err != nil {
			return exceptions.ErrInvalidTimeSlot(err)
		}
		if !startsAt.After(now) {
			return exceptions.ErrDateInPast(nil)
		}
	}
	return nil
}

// findOwnedAppointment loads an appointment and enforces ownership: a
// patient sees only their own, a doctor only theirs, an admin any.
func (uc *appointmentUsecase) findOwnedAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
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

// resolveRoomID prefers the doctor's assigned room and falls back to the
// first active room of the department. No room is acceptable.
func (uc *appointmentUsecase) resolveRoomID(ctx context.Context, doctor *models.User) *primitive.ObjectID {
	if doctor.Doctor == nil {
		return nil
	}
	if doctor.Doctor.RoomID != nil {
		room, err := uc.RoomRepository.FindByID(ctx, *doctor.Doctor.RoomID)
		if err == nil && room != nil && room.IsActive {
			return doctor.Doctor.RoomID
		}
	}
	room, err := uc.RoomRepository.FindFirstActiveByDepartmentID(ctx, doctor.Doctor.DepartmentID)
	if err == nil && room != nil {
		return &room.ID
	}
	return nil
}

// publishEvent is best effort. A broker outage must not fail the booking.
func (uc *appointmentUsecase) publishEvent(ctx context.Context, requestID, eventType string, appointment *models.Appointment) {
	if uc.NotificationService == nil {
		return
	}
	if err := uc.NotificationService.PublishAppointmentEvent(ctx, eventType, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.publishEvent error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	patient, err := uc.UserRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := uc.UserRepository.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	department, err := uc.DepartmentRepository.FindByID(ctx, appointment.DepartmentID)
	if err != nil {
		return nil, err
	}

	var service *models.Service
	if appointment.ServiceID != nil {
		service, err = uc.ServiceRepository.FindByID(ctx, *appointment.ServiceID)
		if err != nil {
			return nil, err
		}
	}

	var room *models.Room
	if appointment.RoomID != nil {
		room, err = uc.RoomRepository.FindByID(ctx, *appointment.RoomID)
		if err != nil {
			return nil, err
		}
	}

	return utils.MapAppointmentToResponse(appointment, patient, doctor, department, service, room), nil
}
