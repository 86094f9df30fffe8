package auth

import (
	"context"
	"errors"
	"testing"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
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

func (m *MockUserRepository) FindDoctorsByDepartmentID(ctx context.Context, departmentID primitive.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindDoctors(ctx context.Context, departmentID *primitive.ObjectID, specialization string) ([]models.User, error) {
	args := m.Called(ctx, departmentID, specialization)
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

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestAuthUsecase() (*authUsecase, *MockUserRepository, *MockSessionService) {
	users := new(MockUserRepository)
	sessions := new(MockSessionService)
	uc := &authUsecase{
		UserRepository: users,
		SessionService: sessions,
		InternalConfig: &config.InternalConfig{
			JWT: config.JWT{Secret: "unit-test-secret", ExpTimeInHour: 1},
		},
		Log: zap.NewNop(),
	}
	return uc, users, sessions
}

func assertCustomError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()
	var customErr *exceptions.CustomError
	if assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err) {
		assert.Equal(t, statusCode, customErr.StatusCode)
		assert.Equal(t, code, customErr.Code)
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	request := &requests.Register{
		Email:    "jane@example.com",
		Password: "Str0ng!Pass",
		FullName: "Jane Doe",
		Role:     constvars.RolePatient,
	}

	t.Run("existing email is rejected before insert", func(t *testing.T) {
		uc, users, _ := newTestAuthUsecase()
		users.On("FindByEmail", mock.Anything, "jane@example.com").Return(&models.User{ID: primitive.NewObjectID()}, nil)

		_, err := uc.Register(context.Background(), request)

		assertCustomError(t, err, constvars.StatusConflict, constvars.ErrCodeConflict)
		users.AssertNotCalled(t, "Create")
	})

	t.Run("concurrent duplicate surfaces as conflict from insert", func(t *testing.T) {
		// The email check passes but the unique index rejects the insert,
		// as happens when two registrations race.
		uc, users, _ := newTestAuthUsecase()
		users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil, exceptions.ErrEmailAlreadyExist(errors.New("E11000 duplicate key")))

		_, err := uc.Register(context.Background(), request)

		assertCustomError(t, err, constvars.StatusConflict, constvars.ErrCodeConflict)
	})

	t.Run("patient registration stores profile", func(t *testing.T) {
		uc, users, _ := newTestAuthUsecase()
		profileRequest := &requests.Register{
			Email:       "jane@example.com",
			Password:    "Str0ng!Pass",
			FullName:    "Jane Doe",
			Role:        constvars.RolePatient,
			DateOfBirth: "1990-04-01",
			Gender:      "female",
		}
		created := &models.User{
			ID:       primitive.NewObjectID(),
			Email:    "jane@example.com",
			FullName: "Jane Doe",
			Role:     constvars.RolePatient,
		}
		users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Patient != nil && user.Patient.DateOfBirth == "1990-04-01" && user.PasswordHash != "Str0ng!Pass"
		})).Return(created, nil)

		response, err := uc.Register(context.Background(), profileRequest)

		assert.NoError(t, err)
		assert.Equal(t, created.ID.Hex(), response.UserID)
		assert.Equal(t, constvars.RolePatient, response.Role)
		users.AssertExpectations(t)
	})
}
