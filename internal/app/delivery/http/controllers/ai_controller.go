package controllers

import (
	"context"
	"net/http"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AIController struct {
	Log       *zap.Logger
	AIUsecase contracts.AIUsecase
}

func NewAIController(logger *zap.Logger, aiUsecase contracts.AIUsecase) *AIController {
	return &AIController{
		Log:       logger,
		AIUsecase: aiUsecase,
	}
}

func (ctrl *AIController) SuggestDepartment(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SuggestDepartment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeSuggestDepartmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.SuggestDepartment(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuggestDepartmentSuccessMessage, response)
}

func (ctrl *AIController) HealthChat(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.HealthChat)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.AIUsecase.HealthChat(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthChatSuccessMessage, response)
}
