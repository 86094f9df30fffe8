package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
	"myhealthcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const medicalDisclaimer = "This is not a medical diagnosis. Please consult a doctor for professional advice."

const suggestSystemPrompt = `You are a triage assistant for a medical clinic.
Given a patient's symptom description and the list of available departments,
pick the single most appropriate department. Respond with a JSON object only,
no prose, in this shape:
{"department": "<exact department name>", "confidence": <0..1>, "reason": "<one sentence>", "alternatives": ["<name>", ...]}`

const chatSystemPrompt = `You are a general health assistant for a medical clinic.
Answer briefly and factually. You must not diagnose, prescribe, or replace a
doctor. When symptoms sound serious, advise the user to book an appointment.`

// suggestionPayload is the JSON shape the model is instructed to return.
type suggestionPayload struct {
	Department   string   `json:"department"`
	Confidence   float64  `json:"confidence"`
	Reason       string   `json:"reason"`
	Alternatives []string `json:"alternatives"`
}

type aiUsecase struct {
	ChatClient           contracts.ChatClient
	DepartmentRepository contracts.DepartmentRepository
	RedisRepository      contracts.RedisRepository
	Log                  *zap.Logger
}

var (
	aiUsecaseInstance contracts.AIUsecase
	onceAIUsecase     sync.Once
)

func NewAIUsecase(
	chatClient contracts.ChatClient,
	departmentRepository contracts.DepartmentRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.AIUsecase {
	onceAIUsecase.Do(func() {
		instance := &aiUsecase{
			ChatClient:           chatClient,
			DepartmentRepository: departmentRepository,
			RedisRepository:      redisRepository,
			Log:                  logger,
		}
		aiUsecaseInstance = instance
	})
	return aiUsecaseInstance
}

func (uc *aiUsecase) SuggestDepartment(ctx context.Context, request *requests.SuggestDepartment) (*responses.SuggestDepartment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("aiUsecase.SuggestDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	departments, err := uc.cachedDepartments(ctx)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	names := make([]string, 0, len(departments))
	byName := make(map[string]*models.Department, len(departments))
	for i := range departments {
		names = append(names, departments[i].Name)
		byName[strings.ToLower(departments[i].Name)] = &departments[i]
	}

	messages := []contracts.ChatMessage{
		{Role: "system", Content: suggestSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Available departments: %s\n\nSymptoms: %s", strings.Join(names, ", "), request.Symptoms)},
	}

	content, err := uc.ChatClient.Complete(ctx, messages)
	if err != nil {
		uc.Log.Error("aiUsecase.SuggestDepartment error from chat client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	payload, err := parseSuggestionPayload(content)
	if err != nil {
		uc.Log.Error("aiUsecase.SuggestDepartment error parsing model output",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.SuggestDepartment{
		Suggested: responses.SuggestedDepartment{
			Name:       payload.Department,
			Confidence: payload.Confidence,
			Reason:     payload.Reason,
		},
		Disclaimer: medicalDisclaimer,
	}
	if match, ok := byName[strings.ToLower(payload.Department)]; ok {
		response.Suggested.ID = match.ID.Hex()
		response.Suggested.Name = match.Name
	}
	for _, alternative := range payload.Alternatives {
		entry := responses.SuggestedDepartment{Name: alternative}
		if match, ok := byName[strings.ToLower(alternative)]; ok {
			entry.ID = match.ID.Hex()
			entry.Name = match.Name
		}
		response.Alternatives = append(response.Alternatives, entry)
	}

	uc.Log.Info("aiUsecase.SuggestDepartment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDepartmentIDKey, response.Suggested.ID),
	)
	return response, nil
}

func (uc *aiUsecase) HealthChat(ctx context.Context, request *requests.HealthChat) (*responses.HealthChat, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("aiUsecase.HealthChat called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	messages := make([]contracts.ChatMessage, 0, len(request.History)+2)
	messages = append(messages, contracts.ChatMessage{Role: "system", Content: chatSystemPrompt})
	for _, turn := range request.History {
		messages = append(messages, contracts.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, contracts.ChatMessage{Role: "user", Content: request.Message})

	reply, err := uc.ChatClient.Complete(ctx, messages)
	if err != nil {
		uc.Log.Error("aiUsecase.HealthChat error from chat client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("aiUsecase.HealthChat succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.HealthChat{
		Reply:      reply,
		Disclaimer: medicalDisclaimer,
	}, nil
}

// cachedDepartments serves the active department list from Redis, falling
// back to Mongo and repopulating the cache for an hour.
func (uc *aiUsecase) cachedDepartments(ctx context.Context) ([]models.Department, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.DepartmentsCacheKey)
	if err == nil && cached != "" {
		var departments []models.Department
		if err := json.Unmarshal([]byte(cached), &departments); err == nil {
			return departments, nil
		}
	}

	departments, err := uc.DepartmentRepository.FindAll(ctx, true)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.DepartmentsCacheKey, departments, constvars.DepartmentsCacheTTLInSecond*time.Second); err != nil {
		uc.Log.Warn("aiUsecase.cachedDepartments error caching departments",
			zap.Error(err),
		)
	}
	return departments, nil
}

// parseSuggestionPayload tolerates models that wrap the JSON object in
// markdown fences or prose.
func parseSuggestionPayload(content string) (*suggestionPayload, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return nil, exceptions.ErrAIResponseNotJSON(fmt.Errorf("no JSON object in %q", content))
	}

	payload := new(suggestionPayload)
	if err := json.Unmarshal([]byte(content[start:end+1]), payload); err != nil {
		return nil, exceptions.ErrAIResponseNotJSON(err)
	}
	if payload.Department == "" {
		return nil, exceptions.ErrAIResponseNotJSON(fmt.Errorf("missing department field"))
	}
	return payload, nil
}
