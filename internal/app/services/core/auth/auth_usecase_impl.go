package auth

import (
	"context"
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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Register error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		FullName:     request.FullName,
		PhoneNumber:  request.Phone,
		Role:         request.Role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if request.Role == constvars.RolePatient {
		user.Patient = &models.PatientProfile{
			DateOfBirth:     request.DateOfBirth,
			Gender:          request.Gender,
			InsuranceNumber: request.InsuranceNumber,
		}
	}

	user, err = uc.UserRepository.Create(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)
	return &responses.Register{
		UserID:   user.ID.Hex(),
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)
	return &responses.Login{
		Token:     token,
		ExpiresIn: uc.InternalConfig.JWT.ExpTimeInHour * 3600,
		UserID:    user.ID.Hex(),
		FullName:  user.FullName,
		Role:      user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.SessionService.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
