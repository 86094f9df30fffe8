package ai

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []contracts.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// openRouterClient talks to any OpenAI-compatible chat completions API.
// Outbound traffic is throttled with a token bucket so a burst of clinic
// traffic cannot exhaust the provider quota.
type openRouterClient struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	BaseUrl    string
	APIKey     string
	Model      string
}

func NewOpenRouterClient(aiConfig config.AI) contracts.ChatClient {
	return &openRouterClient{
		HTTPClient: &http.Client{
			Timeout: time.Duration(aiConfig.TimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(aiConfig.MaxRequestsPerMinute)), aiConfig.MaxRequestsPerMinute),
		BaseUrl: aiConfig.BaseUrl,
		APIKey:  aiConfig.APIKey,
		Model:   aiConfig.Model,
	}
}

func (c *openRouterClient) Complete(ctx context.Context, messages []contracts.ChatMessage) (string, error) {
	if err := c.Limiter.Wait(ctx); err != nil {
		return "", exceptions.ErrAIRequest(err)
	}

	payload := chatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", exceptions.ErrAIRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.APIKey)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return "", exceptions.ErrAIRequest(err)
	}
	defer response.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return "", exceptions.ErrAIRequest(err)
	}
	if response.StatusCode != http.StatusOK {
		message := response.Status
		if completion.Error != nil {
			message = completion.Error.Message
		}
		return "", exceptions.ErrAIRequest(fmt.Errorf("completion endpoint returned %d: %s", response.StatusCode, message))
	}
	if len(completion.Choices) == 0 {
		return "", exceptions.ErrAIRequest(fmt.Errorf("completion endpoint returned no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}
