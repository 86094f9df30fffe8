package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByFilter(ctx context.Context, filter *contracts.AppointmentDBFilter) ([]models.Appointment, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) FindBookedTimesByDoctorDate(ctx context.Context, doctorID primitive.ObjectID, date string) ([]string, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentRepository) FindDistinctPatientIDsByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockAppointmentRepository) FindLastCompletedByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (*models.Appointment, error) {
	args := m.Called(ctx, doctorID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountByDoctorPatient(ctx context.Context, doctorID, patientID primitive.ObjectID) (int, error) {
	args := m.Called(ctx, doctorID, patientID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctorByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctors(ctx context.Context, departmentID *primitive.ObjectID, specialization string) ([]models.User, error) {
	args := m.Called(ctx, departmentID, specialization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Department, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll(ctx context.Context, departmentID *primitive.ObjectID) ([]models.Service, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.Service, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Room, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) FindFirstActiveByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) (*models.Room, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) PublishAppointmentEvent(ctx context.Context, eventType string, appointment *models.Appointment) error {
	args := m.Called(ctx, eventType, appointment)
	return args.Error(0)
}

type usecaseMocks struct {
	appointments  *MockAppointmentRepository
	users         *MockUserRepository
	departments   *MockDepartmentRepository
	services      *MockServiceRepository
	rooms         *MockRoomRepository
	notifications *MockNotificationService
}

func newTestUsecase() (*appointmentUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		appointments:  new(MockAppointmentRepository),
		users:         new(MockUserRepository),
		departments:   new(MockDepartmentRepository),
		services:      new(MockServiceRepository),
		rooms:         new(MockRoomRepository),
		notifications: new(MockNotificationService),
	}
	uc := &appointmentUsecase{
		AppointmentRepository: mocks.appointments,
		UserRepository:        mocks.users,
		DepartmentRepository:  mocks.departments,
		ServiceRepository:     mocks.services,
		RoomRepository:        mocks.rooms,
		NotificationService:   mocks.notifications,
		InternalConfig:        &config.InternalConfig{},
		Log:                   zap.NewNop(),
	}
	return uc, mocks
}

func patientSession(userID primitive.ObjectID) *models.Session {
	return &models.Session{
		SessionID: "test-session",
		UserID:    userID.Hex(),
		Email:     "patient@example.com",
		FullName:  "Test Patient",
		Role:      constvars.RolePatient,
	}
}

func doctorSession(userID primitive.ObjectID) *models.Session {
	return &models.Session{
		SessionID: "test-session",
		UserID:    userID.Hex(),
		Email:     "doctor@example.com",
		FullName:  "Test Doctor",
		Role:      constvars.RoleDoctor,
	}
}

func assertCustomError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
		assert.Equal(t, code, customErr.Code)
	}
}

func TestAppointmentUsecase_Create_OnlyPatientsCanBook(t *testing.T) {
	uc, _ := newTestUsecase()
	session := doctorSession(primitive.NewObjectID())

	request := &requests.CreateAppointment{
		DoctorID:        primitive.NewObjectID().Hex(),
		DepartmentID:    primitive.NewObjectID().Hex(),
		AppointmentDate: time.Now().AddDate(0, 0, 3).Format(constvars.AppointmentDateFormat),
		AppointmentTime: "09:00",
	}

	response, err := uc.Create(context.Background(), session, request)

	assert.Nil(t, response)
	assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
}

func TestAppointmentUsecase_Create_RejectsPastAndFarAheadDates(t *testing.T) {
	uc, _ := newTestUsecase()
	session := patientSession(primitive.NewObjectID())

	t.Run("date in the past", func(t *testing.T) {
		request := &requests.CreateAppointment{
			DoctorID:        primitive.NewObjectID().Hex(),
			DepartmentID:    primitive.NewObjectID().Hex(),
			AppointmentDate: time.Now().AddDate(0, 0, -1).Format(constvars.AppointmentDateFormat),
			AppointmentTime: "09:00",
		}

		_, err := uc.Create(context.Background(), session, request)
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodeValidation)
	})

	t.Run("date beyond thirty days", func(t *testing.T) {
		request := &requests.CreateAppointment{
			DoctorID:        primitive.NewObjectID().Hex(),
			DepartmentID:    primitive.NewObjectID().Hex(),
			AppointmentDate: time.Now().AddDate(0, 0, 45).Format(constvars.AppointmentDateFormat),
			AppointmentTime: "09:00",
		}

		_, err := uc.Create(context.Background(), session, request)
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodeValidation)
	})
}

func TestAppointmentUsecase_Create_SlotTaken(t *testing.T) {
	uc, mocks := newTestUsecase()

	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	session := patientSession(patientID)

	department := &models.Department{ID: departmentID, Name: "Cardiology", HealthExaminationFee: 150000, IsActive: true}
	doctor := &models.User{
		ID:       doctorID,
		Role:     constvars.RoleDoctor,
		IsActive: true,
		Doctor:   &models.DoctorProfile{DepartmentID: departmentID},
	}

	mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)
	mocks.users.On("FindDoctorByID", mock.Anything, doctorID).Return(doctor, nil)
	mocks.rooms.On("FindFirstActiveByDepartmentID", mock.Anything, departmentID).Return(nil, nil)
	mocks.appointments.On("Insert", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil, exceptions.ErrSlotTaken(nil))

	request := &requests.CreateAppointment{
		DoctorID:        doctorID.Hex(),
		DepartmentID:    departmentID.Hex(),
		AppointmentDate: time.Now().AddDate(0, 0, 3).Format(constvars.AppointmentDateFormat),
		AppointmentTime: "09:00",
	}

	response, err := uc.Create(context.Background(), session, request)

	assert.Nil(t, response)
	assertCustomError(t, err, constvars.StatusConflict, constvars.ErrCodeConflict)
	mocks.appointments.AssertExpectations(t)
}

func TestAppointmentUsecase_Create_Success(t *testing.T) {
	uc, mocks := newTestUsecase()

	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	session := patientSession(patientID)

	department := &models.Department{ID: departmentID, Name: "Cardiology", HealthExaminationFee: 150000, IsActive: true}
	doctor := &models.User{
		ID:       doctorID,
		FullName: "Dr. Strange",
		Role:     constvars.RoleDoctor,
		IsActive: true,
		Doctor:   &models.DoctorProfile{DepartmentID: departmentID, Specialization: "Cardiology"},
	}
	patient := &models.User{ID: patientID, FullName: "Test Patient", Role: constvars.RolePatient, IsActive: true}

	appointmentDate := time.Now().AddDate(0, 0, 3).Format(constvars.AppointmentDateFormat)
	inserted := &models.Appointment{
		ID:              primitive.NewObjectID(),
		PatientID:       patientID,
		DoctorID:        doctorID,
		DepartmentID:    departmentID,
		AppointmentDate: appointmentDate,
		AppointmentTime: "09:00",
		Status:          constvars.AppointmentStatusBooked,
		Symptoms:        "chest pain",
		EstimatedFee:    150000,
	}
	mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)
	mocks.users.On("FindDoctorByID", mock.Anything, doctorID).Return(doctor, nil)
	mocks.rooms.On("FindFirstActiveByDepartmentID", mock.Anything, departmentID).Return(nil, nil)
	mocks.appointments.On("Insert", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(inserted, nil)
	mocks.notifications.On("PublishAppointmentEvent", mock.Anything, EventAppointmentCreated, mock.AnythingOfType("*models.Appointment")).Return(nil)
	mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
	mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)

	request := &requests.CreateAppointment{
		DoctorID:        doctorID.Hex(),
		DepartmentID:    departmentID.Hex(),
		AppointmentDate: appointmentDate,
		AppointmentTime: "09:00",
		Symptoms:        "chest pain",
	}

	response, err := uc.Create(context.Background(), session, request)

	assert.NoError(t, err)
	if assert.NotNil(t, response) {
		assert.Equal(t, constvars.AppointmentStatusBooked, response.Status)
		assert.Equal(t, int64(150000), response.EstimatedFee)
		assert.Equal(t, "Dr. Strange", response.Doctor.FullName)
	}
	mocks.notifications.AssertExpectations(t)
}

func TestAppointmentUsecase_Cancel_WindowEnforcement(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	newBookedAppointment := func(startsAt time.Time) *models.Appointment {
		return &models.Appointment{
			ID:              appointmentID,
			PatientID:       patientID,
			DoctorID:        doctorID,
			DepartmentID:    departmentID,
			AppointmentDate: startsAt.Format(constvars.AppointmentDateFormat),
			AppointmentTime: startsAt.Format(constvars.AppointmentTimeFormat),
			Status:          constvars.AppointmentStatusBooked,
		}
	}

	t.Run("patient inside 24 hour window is rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newBookedAppointment(time.Now().Add(2 * time.Hour))
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

		_, err := uc.Cancel(context.Background(), patientSession(patientID), appointmentID.Hex(), &requests.CancelAppointment{Reason: "cannot make it"})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
		mocks.appointments.AssertNotCalled(t, "Update")
	})

	t.Run("patient outside 24 hour window succeeds", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newBookedAppointment(time.Now().Add(72 * time.Hour))
		patient := &models.User{ID: patientID, FullName: "Test Patient", Role: constvars.RolePatient}
		doctor := &models.User{ID: doctorID, FullName: "Dr. Strange", Role: constvars.RoleDoctor}
		department := &models.Department{ID: departmentID, Name: "Cardiology"}

		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.appointments.On("Update", mock.Anything, appointment).Return(nil)
		mocks.notifications.On("PublishAppointmentEvent", mock.Anything, EventAppointmentCancelled, appointment).Return(nil)
		mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)
		mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)

		response, err := uc.Cancel(context.Background(), patientSession(patientID), appointmentID.Hex(), &requests.CancelAppointment{Reason: "cannot make it"})

		assert.NoError(t, err)
		if assert.NotNil(t, response) {
			assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
			assert.Equal(t, "cannot make it", response.CancellationReason)
		}
	})

	t.Run("doctor may cancel inside the window", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newBookedAppointment(time.Now().Add(2 * time.Hour))
		patient := &models.User{ID: patientID, FullName: "Test Patient", Role: constvars.RolePatient}
		doctor := &models.User{ID: doctorID, FullName: "Dr. Strange", Role: constvars.RoleDoctor}
		department := &models.Department{ID: departmentID, Name: "Cardiology"}

		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.appointments.On("Update", mock.Anything, appointment).Return(nil)
		mocks.notifications.On("PublishAppointmentEvent", mock.Anything, EventAppointmentCancelled, appointment).Return(nil)
		mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)
		mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)

		response, err := uc.Cancel(context.Background(), doctorSession(doctorID), appointmentID.Hex(), &requests.CancelAppointment{Reason: "emergency surgery"})

		assert.NoError(t, err)
		assert.NotNil(t, response)
	})

	t.Run("cancelled appointment cannot be cancelled again", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newBookedAppointment(time.Now().Add(72 * time.Hour))
		appointment.Status = constvars.AppointmentStatusCancelled
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

		_, err := uc.Cancel(context.Background(), patientSession(patientID), appointmentID.Hex(), &requests.CancelAppointment{Reason: "again"})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
	})

	t.Run("another patient's appointment is not cancellable", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newBookedAppointment(time.Now().Add(72 * time.Hour))
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

		_, err := uc.Cancel(context.Background(), patientSession(primitive.NewObjectID()), appointmentID.Hex(), &requests.CancelAppointment{Reason: "not mine"})

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})
}

func TestAppointmentUsecase_Reschedule_RecordsOrigin(t *testing.T) {
	uc, mocks := newTestUsecase()

	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	originalDate := time.Now().AddDate(0, 0, 5).Format(constvars.AppointmentDateFormat)
	appointment := &models.Appointment{
		ID:              appointmentID,
		PatientID:       patientID,
		DoctorID:        doctorID,
		DepartmentID:    departmentID,
		AppointmentDate: originalDate,
		AppointmentTime: "09:00",
		Status:          constvars.AppointmentStatusConfirmed,
		Notes:           "bring previous scans",
	}
	patient := &models.User{ID: patientID, FullName: "Test Patient"}
	doctor := &models.User{ID: doctorID, FullName: "Dr. Strange"}
	department := &models.Department{ID: departmentID, Name: "Cardiology"}

	mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
	mocks.appointments.On("Update", mock.Anything, appointment).Return(nil)
	mocks.notifications.On("PublishAppointmentEvent", mock.Anything, EventAppointmentRescheduled, appointment).Return(nil)
	mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
	mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)
	mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)

	newDate := time.Now().AddDate(0, 0, 10).Format(constvars.AppointmentDateFormat)
	request := &requests.RescheduleAppointment{NewDate: newDate, NewTime: "10:30", Reason: "travel"}

	response, err := uc.Reschedule(context.Background(), patientSession(patientID), appointmentID.Hex(), request)

	assert.NoError(t, err)
	if assert.NotNil(t, response) {
		assert.Equal(t, constvars.AppointmentStatusBooked, response.Status)
		assert.Equal(t, newDate, response.AppointmentDate)
		assert.Equal(t, "10:30", response.AppointmentTime)
	}
	if assert.NotNil(t, appointment.RescheduledFrom) {
		assert.Equal(t, originalDate, appointment.RescheduledFrom.Date)
		assert.Equal(t, "09:00", appointment.RescheduledFrom.Time)
	}
	assert.Equal(t, "bring previous scans\nReschedule reason: travel", appointment.Notes)
}

func TestAppointmentUsecase_Reschedule_TerminalStatusRejected(t *testing.T) {
	uc, mocks := newTestUsecase()

	patientID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	appointment := &models.Appointment{
		ID:        appointmentID,
		PatientID: patientID,
		Status:    constvars.AppointmentStatusCompleted,
	}
	mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

	newDate := time.Now().AddDate(0, 0, 10).Format(constvars.AppointmentDateFormat)
	_, err := uc.Reschedule(context.Background(), patientSession(patientID), appointmentID.Hex(), &requests.RescheduleAppointment{NewDate: newDate, NewTime: "10:30"})

	assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
	mocks.appointments.AssertNotCalled(t, "Update")
}

func TestAppointmentUsecase_Transitions(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	newAppointment := func(status string) *models.Appointment {
		return &models.Appointment{
			ID:           appointmentID,
			PatientID:    patientID,
			DoctorID:     doctorID,
			DepartmentID: departmentID,
			Status:       status,
		}
	}

	t.Run("patients cannot confirm", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.Confirm(context.Background(), patientSession(patientID), appointmentID.Hex())
		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})

	t.Run("booked cannot be completed directly", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(newAppointment(constvars.AppointmentStatusBooked), nil)

		_, err := uc.Complete(context.Background(), doctorSession(doctorID), appointmentID.Hex())
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
	})

	t.Run("confirmed can be completed by its doctor", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newAppointment(constvars.AppointmentStatusConfirmed)
		patient := &models.User{ID: patientID, FullName: "Test Patient"}
		doctor := &models.User{ID: doctorID, FullName: "Dr. Strange"}
		department := &models.Department{ID: departmentID, Name: "Cardiology"}

		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.appointments.On("Update", mock.Anything, appointment).Return(nil)
		mocks.notifications.On("PublishAppointmentEvent", mock.Anything, EventAppointmentCompleted, appointment).Return(nil)
		mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)
		mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)

		response, err := uc.Complete(context.Background(), doctorSession(doctorID), appointmentID.Hex())

		assert.NoError(t, err)
		if assert.NotNil(t, response) {
			assert.Equal(t, constvars.AppointmentStatusCompleted, response.Status)
		}
	})
}

func TestAppointmentUsecase_AssignService(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	serviceID := primitive.NewObjectID()

	newConfirmedAppointment := func() *models.Appointment {
		return &models.Appointment{
			ID:           appointmentID,
			PatientID:    patientID,
			DoctorID:     doctorID,
			DepartmentID: departmentID,
			Status:       constvars.AppointmentStatusConfirmed,
			EstimatedFee: 150000,
		}
	}

	t.Run("fee combines examination fee and service price", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newConfirmedAppointment()
		service := &models.Service{ID: serviceID, DepartmentID: departmentID, Name: "Echocardiogram", Price: 500000, IsActive: true}
		department := &models.Department{ID: departmentID, Name: "Cardiology", HealthExaminationFee: 150000}
		patient := &models.User{ID: patientID, FullName: "Test Patient"}
		doctor := &models.User{ID: doctorID, FullName: "Dr. Strange"}

		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.services.On("FindByID", mock.Anything, serviceID).Return(service, nil)
		mocks.departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)
		mocks.appointments.On("Update", mock.Anything, appointment).Return(nil)
		mocks.users.On("FindByID", mock.Anything, patientID).Return(patient, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(doctor, nil)

		response, err := uc.AssignService(context.Background(), doctorSession(doctorID), appointmentID.Hex(), &requests.AssignService{ServiceID: serviceID.Hex()})

		assert.NoError(t, err)
		if assert.NotNil(t, response) {
			assert.Equal(t, int64(150000), response.FeeBreakdown.HealthExaminationFee)
			assert.Equal(t, int64(500000), response.FeeBreakdown.ServiceFee)
			assert.Equal(t, int64(650000), response.FeeBreakdown.TotalFee)
		}
	})

	t.Run("service from another department is rejected", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newConfirmedAppointment()
		service := &models.Service{ID: serviceID, DepartmentID: primitive.NewObjectID(), Name: "X-Ray", Price: 200000, IsActive: true}

		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.services.On("FindByID", mock.Anything, serviceID).Return(service, nil)

		_, err := uc.AssignService(context.Background(), doctorSession(doctorID), appointmentID.Hex(), &requests.AssignService{ServiceID: serviceID.Hex()})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodeValidation)
		mocks.appointments.AssertNotCalled(t, "Update")
	})

	t.Run("booked appointment cannot take a service", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		appointment := newConfirmedAppointment()
		appointment.Status = constvars.AppointmentStatusBooked
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

		_, err := uc.AssignService(context.Background(), doctorSession(doctorID), appointmentID.Hex(), &requests.AssignService{ServiceID: serviceID.Hex()})

		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
	})
}

func TestAppointmentUsecase_MyPatients(t *testing.T) {
	uc, mocks := newTestUsecase()

	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	patient := models.User{ID: patientID, FullName: "Test Patient", Email: "patient@example.com"}

	mocks.appointments.On("FindDistinctPatientIDsByDoctor", mock.Anything, doctorID).Return([]primitive.ObjectID{patientID}, nil)
	mocks.users.On("FindByIDs", mock.Anything, []primitive.ObjectID{patientID}).Return([]models.User{patient}, nil)
	mocks.appointments.On("CountByDoctorPatient", mock.Anything, doctorID, patientID).Return(3, nil)
	mocks.appointments.On("FindLastCompletedByDoctorPatient", mock.Anything, doctorID, patientID).Return(&models.Appointment{AppointmentDate: "2026-08-01"}, nil)

	response, total, err := uc.MyPatients(context.Background(), doctorSession(doctorID), &requests.Pagination{Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	if assert.Len(t, response, 1) {
		assert.Equal(t, "Test Patient", response[0].FullName)
		assert.Equal(t, 3, response[0].AppointmentCount)
		assert.Equal(t, "2026-08-01", response[0].LastVisitDate)
	}

	_, _, err = uc.MyPatients(context.Background(), patientSession(patientID), &requests.Pagination{Page: 1, PageSize: 10})
	assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
}

func TestAppointmentUsecase_MyPatients_Pagination(t *testing.T) {
	uc, mocks := newTestUsecase()

	doctorID := primitive.NewObjectID()
	patientIDs := make([]primitive.ObjectID, 25)
	for i := range patientIDs {
		patientIDs[i] = primitive.NewObjectID()
	}
	secondPage := patientIDs[10:20]
	secondPageUsers := make([]models.User, 0, len(secondPage))
	for _, id := range secondPage {
		secondPageUsers = append(secondPageUsers, models.User{ID: id, FullName: "Patient", Email: "p@example.com"})
	}

	mocks.appointments.On("FindDistinctPatientIDsByDoctor", mock.Anything, doctorID).Return(patientIDs, nil)
	mocks.users.On("FindByIDs", mock.Anything, secondPage).Return(secondPageUsers, nil)
	mocks.users.On("FindByIDs", mock.Anything, []primitive.ObjectID{}).Return([]models.User{}, nil)
	mocks.appointments.On("CountByDoctorPatient", mock.Anything, doctorID, mock.Anything).Return(1, nil)
	mocks.appointments.On("FindLastCompletedByDoctorPatient", mock.Anything, doctorID, mock.Anything).Return(nil, nil)

	response, total, err := uc.MyPatients(context.Background(), doctorSession(doctorID), &requests.Pagination{Page: 2, PageSize: 10})

	assert.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Len(t, response, 10)

	response, total, err = uc.MyPatients(context.Background(), doctorSession(doctorID), &requests.Pagination{Page: 4, PageSize: 10})
	assert.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Empty(t, response)
	mocks.users.AssertExpectations(t)
}
