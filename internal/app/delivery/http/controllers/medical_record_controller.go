package controllers

import (
	"context"
	"net/http"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicalRecordController struct {
	Log                  *zap.Logger
	SessionService       contracts.SessionService
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	InternalConfig       *config.InternalConfig
}

func NewMedicalRecordController(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	medicalRecordUsecase contracts.MedicalRecordUsecase,
	internalConfig *config.InternalConfig,
) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		SessionService:       sessionService,
		MedicalRecordUsecase: medicalRecordUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *MedicalRecordController) Upsert(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	// Bind body to request
	request := new(requests.UpsertMedicalRecord)
	err = json.NewDecoder(r.Body).Decode(&request)
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

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.Upsert(ctx, session, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) FindByAppointmentID(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.FindByAppointmentID(ctx, session, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) ListAttachments(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.FindByAppointmentID(ctx, session, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttachmentSuccessMessage, response.Attachments)
}

func (ctrl *MedicalRecordController) MyMedicalRecords(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, total, err := ctrl.MedicalRecordUsecase.MyMedicalRecords(ctx, session, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, paginationResponse, records)
}

func (ctrl *MedicalRecordController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "appointmentID"))
		return
	}

	maxUploadSize := int64(ctrl.InternalConfig.Minio.AttachmentMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	err = r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	if fileHeader.Size > maxUploadSize {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAttachmentTooLarge(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.UploadAttachment(ctx, session, appointmentID, file, fileHeader)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, response)
}
