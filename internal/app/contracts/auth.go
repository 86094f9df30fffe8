package contracts

import (
	"context"

	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
