package contracts

import (
	"context"

	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
)

// ChatMessage is one turn of a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient talks to an OpenAI-compatible chat completions endpoint.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

type AIUsecase interface {
	SuggestDepartment(ctx context.Context, request *requests.SuggestDepartment) (*responses.SuggestDepartment, error)
	HealthChat(ctx context.Context, request *requests.HealthChat) (*responses.HealthChat, error)
}
