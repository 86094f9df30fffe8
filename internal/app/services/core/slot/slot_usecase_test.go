package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

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

func newTestSlotUsecase() (*slotUsecase, *MockUserRepository, *MockDepartmentRepository, *MockRoomRepository, *MockAppointmentRepository) {
	users := new(MockUserRepository)
	departments := new(MockDepartmentRepository)
	rooms := new(MockRoomRepository)
	appointments := new(MockAppointmentRepository)
	uc := &slotUsecase{
		UserRepository:        users,
		DepartmentRepository:  departments,
		RoomRepository:        rooms,
		AppointmentRepository: appointments,
		Log:                   zap.NewNop(),
	}
	return uc, users, departments, rooms, appointments
}

func TestSlotUsecase_AvailableSlots(t *testing.T) {
	doctorID := primitive.NewObjectID()
	departmentID := primitive.NewObjectID()
	doctor := &models.User{
		ID:       doctorID,
		FullName: "Dr. Strange",
		Role:     constvars.RoleDoctor,
		IsActive: true,
		Doctor:   &models.DoctorProfile{DepartmentID: departmentID, Specialization: "Cardiology"},
	}
	department := &models.Department{ID: departmentID, Name: "Cardiology", IsActive: true}
	date := time.Now().AddDate(0, 0, 7).Format(constvars.AppointmentDateFormat)

	t.Run("booked slots are marked unavailable", func(t *testing.T) {
		uc, users, departments, rooms, appointments := newTestSlotUsecase()
		users.On("FindDoctorByID", mock.Anything, doctorID).Return(doctor, nil)
		departments.On("FindByID", mock.Anything, departmentID).Return(department, nil)
		rooms.On("FindFirstActiveByDepartmentID", mock.Anything, departmentID).Return(&models.Room{RoomNumber: "204", IsActive: true}, nil)
		appointments.On("FindBookedTimesByDoctorDate", mock.Anything, doctorID, date).Return([]string{"09:00", "14:30"}, nil)

		response, err := uc.AvailableSlots(context.Background(), doctorID.Hex(), date)

		assert.NoError(t, err)
		assert.Len(t, response.AvailableSlots, 18)

		byTime := make(map[string]bool, len(response.AvailableSlots))
		for _, entry := range response.AvailableSlots {
			byTime[entry.Time] = entry.Available
		}
		assert.False(t, byTime["09:00"])
		assert.False(t, byTime["14:30"])
		assert.True(t, byTime["08:00"])
		assert.True(t, byTime["16:30"])

		for _, entry := range response.AvailableSlots {
			if entry.Available {
				assert.Equal(t, "204", entry.Room)
			} else {
				assert.Empty(t, entry.Room)
			}
		}
	})

	t.Run("past date is rejected", func(t *testing.T) {
		uc, _, _, _, _ := newTestSlotUsecase()
		pastDate := time.Now().AddDate(0, 0, -1).Format(constvars.AppointmentDateFormat)

		_, err := uc.AvailableSlots(context.Background(), doctorID.Hex(), pastDate)

		var customErr *exceptions.CustomError
		if assert.True(t, errors.As(err, &customErr)) {
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		}
	})

	t.Run("date beyond thirty days is rejected", func(t *testing.T) {
		uc, _, _, _, _ := newTestSlotUsecase()
		farDate := time.Now().AddDate(0, 0, 60).Format(constvars.AppointmentDateFormat)

		_, err := uc.AvailableSlots(context.Background(), doctorID.Hex(), farDate)

		var customErr *exceptions.CustomError
		if assert.True(t, errors.As(err, &customErr)) {
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		}
	})

	t.Run("unknown doctor is rejected", func(t *testing.T) {
		uc, users, _, _, _ := newTestSlotUsecase()
		users.On("FindDoctorByID", mock.Anything, doctorID).Return(nil, nil)

		_, err := uc.AvailableSlots(context.Background(), doctorID.Hex(), date)

		var customErr *exceptions.CustomError
		if assert.True(t, errors.As(err, &customErr)) {
			assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		}
	})
}
