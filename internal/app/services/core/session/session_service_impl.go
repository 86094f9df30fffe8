package session

import (
	"context"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	ExpTimeInHour   int
}

func NewSessionService(redisRepository contracts.RedisRepository, expTimeInHour int) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		ExpTimeInHour:   expTimeInHour,
	}
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	exp := time.Duration(svc.ExpTimeInHour) * time.Hour
	return svc.RedisRepository.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, session, exp)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}
