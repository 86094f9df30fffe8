package controllers

import (
	"context"
	"net/http"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
	"myhealthcare-service/internal/pkg/dto/responses"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	SessionService     contracts.SessionService
	AppointmentUsecase contracts.AppointmentUsecase
	SlotUsecase        contracts.SlotUsecase
}

func NewAppointmentController(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	appointmentUsecase contracts.AppointmentUsecase,
	slotUsecase contracts.SlotUsecase,
) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		SessionService:     sessionService,
		AppointmentUsecase: appointmentUsecase,
		SlotUsecase:        slotUsecase,
	}
}

func (ctrl *AppointmentController) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "doctorID"))
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDateFormat(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SlotUsecase.AvailableSlots(ctx, doctorID, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailableSlotsSuccessMessage, response)
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.CreateAppointment)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateAppointmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Create(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	filter := utils.BuildAppointmentFilterRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointments, total, err := ctrl.AppointmentUsecase.FindAll(ctx, session, filter)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, paginationResponse, appointments)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
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

	response, err := ctrl.AppointmentUsecase.FindByID(ctx, session, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
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
	request := new(requests.CancelAppointment)
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

	response, err := ctrl.AppointmentUsecase.Cancel(ctx, session, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Reschedule(w http.ResponseWriter, r *http.Request) {
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
	request := new(requests.RescheduleAppointment)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeRescheduleAppointmentRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Reschedule(ctx, session, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleSuccessMessage, response)
}

func (ctrl *AppointmentController) Confirm(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.AppointmentUsecase.Confirm, constvars.ConfirmAppointmentSuccessMessage)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.AppointmentUsecase.Complete, constvars.CompleteAppointmentSuccessMessage)
}

func (ctrl *AppointmentController) AssignService(w http.ResponseWriter, r *http.Request) {
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
	request := new(requests.AssignService)
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

	response, err := ctrl.AppointmentUsecase.AssignService(ctx, session, appointmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignServiceSuccessMessage, response)
}

func (ctrl *AppointmentController) MyPatients(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromRequest(r, ctrl.SessionService)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patients, total, err := ctrl.AppointmentUsecase.MyPatients(ctx, session, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMyPatientsSuccessMessage, paginationResponse, patients)
}

func (ctrl *AppointmentController) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation func(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error),
	successMessage string,
) {
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

	response, err := operation(ctx, session, appointmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, response)
}
