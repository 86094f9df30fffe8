package medicalrecords

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
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

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) Upsert(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.MedicalRecord, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByAppointmentIDs(ctx context.Context, appointmentIDs []primitive.ObjectID) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, appointmentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByCreatedBy(ctx context.Context, doctorID primitive.ObjectID) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) AppendAttachment(ctx context.Context, recordID primitive.ObjectID, attachment *models.RecordAttachment) error {
	args := m.Called(ctx, recordID, attachment)
	return args.Error(0)
}

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

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectKey string) error {
	args := m.Called(ctx, file, fileHeader, objectKey)
	return args.Error(0)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectKey string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiryTime)
	return args.String(0), args.Error(1)
}

type recordMocks struct {
	records      *MockMedicalRecordRepository
	appointments *MockAppointmentRepository
	users        *MockUserRepository
	storage      *MockStorage
}

func newTestRecordUsecase() (*medicalRecordUsecase, *recordMocks) {
	mocks := &recordMocks{
		records:      new(MockMedicalRecordRepository),
		appointments: new(MockAppointmentRepository),
		users:        new(MockUserRepository),
		storage:      new(MockStorage),
	}
	uc := &medicalRecordUsecase{
		MedicalRecordRepository: mocks.records,
		AppointmentRepository:   mocks.appointments,
		UserRepository:          mocks.users,
		Storage:                 mocks.storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{PreSignedUrlObjectExpiryTimeInHours: 1},
		},
		Log: zap.NewNop(),
	}
	return uc, mocks
}

func assertCustomError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
		assert.Equal(t, code, customErr.Code)
	}
}

func TestMedicalRecordUsecase_Upsert(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()

	newAppointment := func(status string) *models.Appointment {
		return &models.Appointment{
			ID:        appointmentID,
			PatientID: patientID,
			DoctorID:  doctorID,
			Status:    status,
		}
	}
	doctorSession := &models.Session{UserID: doctorID.Hex(), Role: constvars.RoleDoctor}
	request := &requests.UpsertMedicalRecord{Diagnosis: "stable angina", Prescription: "nitroglycerin"}

	t.Run("patients cannot write records", func(t *testing.T) {
		uc, _ := newTestRecordUsecase()
		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}

		_, err := uc.Upsert(context.Background(), session, appointmentID.Hex(), request)
		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})

	t.Run("non completed appointment is rejected", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(newAppointment(constvars.AppointmentStatusConfirmed), nil)

		_, err := uc.Upsert(context.Background(), doctorSession, appointmentID.Hex(), request)
		assertCustomError(t, err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation)
		mocks.records.AssertNotCalled(t, "Upsert")
	})

	t.Run("another doctor is rejected", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(newAppointment(constvars.AppointmentStatusCompleted), nil)
		otherDoctor := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleDoctor}

		_, err := uc.Upsert(context.Background(), otherDoctor, appointmentID.Hex(), request)
		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})

	t.Run("doctor on completed appointment succeeds", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		saved := &models.MedicalRecord{
			ID:            primitive.NewObjectID(),
			AppointmentID: appointmentID,
			Diagnosis:     "stable angina",
			Prescription:  "nitroglycerin",
			CreatedBy:     doctorID,
		}
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(newAppointment(constvars.AppointmentStatusCompleted), nil)
		mocks.records.On("Upsert", mock.Anything, mock.AnythingOfType("*models.MedicalRecord")).Return(saved, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID, FullName: "Dr. Strange"}, nil)

		response, err := uc.Upsert(context.Background(), doctorSession, appointmentID.Hex(), request)

		assert.NoError(t, err)
		if assert.NotNil(t, response) {
			assert.Equal(t, "stable angina", response.Diagnosis)
			assert.Equal(t, "Dr. Strange", response.CreatedByName)
		}
	})
}

func TestMedicalRecordUsecase_FindByAppointmentID(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	appointment := &models.Appointment{
		ID:        appointmentID,
		PatientID: patientID,
		DoctorID:  doctorID,
		Status:    constvars.AppointmentStatusCompleted,
	}

	t.Run("missing record returns not found", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.records.On("FindByAppointmentID", mock.Anything, appointmentID).Return(nil, nil)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		_, err := uc.FindByAppointmentID(context.Background(), session, appointmentID.Hex())

		assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrCodeNotFound)
	})

	t.Run("another patient cannot read the record", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RolePatient}
		_, err := uc.FindByAppointmentID(context.Background(), session, appointmentID.Hex())

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})

	t.Run("attachments carry presigned URLs", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		record := &models.MedicalRecord{
			ID:            primitive.NewObjectID(),
			AppointmentID: appointmentID,
			Diagnosis:     "stable angina",
			CreatedBy:     doctorID,
			Attachments: []models.RecordAttachment{
				{ObjectKey: "records/abc/1.pdf", FileName: "scan.pdf", ContentType: "application/pdf", Size: 1024},
			},
		}
		mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
		mocks.records.On("FindByAppointmentID", mock.Anything, appointmentID).Return(record, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID, FullName: "Dr. Strange"}, nil)
		mocks.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "records/abc/1.pdf", time.Hour).Return("https://storage.local/records/abc/1.pdf?sig=x", nil)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		response, err := uc.FindByAppointmentID(context.Background(), session, appointmentID.Hex())

		assert.NoError(t, err)
		if assert.Len(t, response.Attachments, 1) {
			assert.Equal(t, "https://storage.local/records/abc/1.pdf?sig=x", response.Attachments[0].DownloadURL)
		}
	})
}

func TestMedicalRecordUsecase_UploadAttachment_RequiresRecord(t *testing.T) {
	doctorID := primitive.NewObjectID()
	appointmentID := primitive.NewObjectID()
	appointment := &models.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   constvars.AppointmentStatusCompleted,
	}

	uc, mocks := newTestRecordUsecase()
	mocks.appointments.On("FindByID", mock.Anything, appointmentID).Return(appointment, nil)
	mocks.records.On("FindByAppointmentID", mock.Anything, appointmentID).Return(nil, nil)

	session := &models.Session{UserID: doctorID.Hex(), Role: constvars.RoleDoctor}
	fileHeader := &multipart.FileHeader{Filename: "scan.pdf", Size: 1024}

	_, err := uc.UploadAttachment(context.Background(), session, appointmentID.Hex(), nil, fileHeader)

	assertCustomError(t, err, constvars.StatusNotFound, constvars.ErrCodeNotFound)
	mocks.storage.AssertNotCalled(t, "UploadFile")
}

func TestMedicalRecordUsecase_MyMedicalRecords(t *testing.T) {
	t.Run("doctor sees authored records", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		doctorID := primitive.NewObjectID()
		records := []models.MedicalRecord{
			{ID: primitive.NewObjectID(), AppointmentID: primitive.NewObjectID(), Diagnosis: "stable angina", CreatedBy: doctorID},
			{ID: primitive.NewObjectID(), AppointmentID: primitive.NewObjectID(), Diagnosis: "migraine", CreatedBy: doctorID},
		}
		mocks.records.On("FindByCreatedBy", mock.Anything, doctorID).Return(records, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID, FullName: "Dr. Strange"}, nil)

		session := &models.Session{UserID: doctorID.Hex(), Role: constvars.RoleDoctor}
		response, total, err := uc.MyMedicalRecords(context.Background(), session, &requests.Pagination{Page: 1, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		if assert.Len(t, response, 2) {
			assert.Equal(t, "stable angina", response[0].Diagnosis)
			assert.Equal(t, "Dr. Strange", response[0].CreatedByName)
		}
		mocks.appointments.AssertNotCalled(t, "FindByFilter")
	})

	t.Run("patient sees records of own completed appointments", func(t *testing.T) {
		uc, mocks := newTestRecordUsecase()
		patientID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()
		appointmentID := primitive.NewObjectID()
		appointments := []models.Appointment{
			{ID: appointmentID, PatientID: patientID, DoctorID: doctorID, Status: constvars.AppointmentStatusCompleted},
		}
		records := []models.MedicalRecord{
			{ID: primitive.NewObjectID(), AppointmentID: appointmentID, Diagnosis: "stable angina", CreatedBy: doctorID},
		}
		mocks.appointments.On("FindByFilter", mock.Anything, mock.MatchedBy(func(filter *contracts.AppointmentDBFilter) bool {
			return filter.PatientID == patientID && filter.Status == constvars.AppointmentStatusCompleted
		})).Return(appointments, 1, nil)
		mocks.records.On("FindByAppointmentIDs", mock.Anything, []primitive.ObjectID{appointmentID}).Return(records, nil)
		mocks.users.On("FindByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID, FullName: "Dr. Strange"}, nil)

		session := &models.Session{UserID: patientID.Hex(), Role: constvars.RolePatient}
		response, total, err := uc.MyMedicalRecords(context.Background(), session, &requests.Pagination{Page: 1, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		if assert.Len(t, response, 1) {
			assert.Equal(t, "stable angina", response[0].Diagnosis)
		}
		mocks.records.AssertNotCalled(t, "FindByCreatedBy")
	})

	t.Run("other roles are rejected", func(t *testing.T) {
		uc, _ := newTestRecordUsecase()
		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}

		_, _, err := uc.MyMedicalRecords(context.Background(), session, &requests.Pagination{Page: 1, PageSize: 10})

		assertCustomError(t, err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied)
	})
}
