package controllers

import (
	"context"
	"net/http"
	"time"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"
	"myhealthcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
	}
}

func (ctrl *CatalogController) ListDepartments(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	departments, total, err := ctrl.CatalogUsecase.ListDepartments(ctx, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, paginationResponse, departments)
}

func (ctrl *CatalogController) GetDepartmentDetail(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "departmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CatalogUsecase.GetDepartmentDetail(ctx, departmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, response)
}

func (ctrl *CatalogController) ListDoctorsByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "departmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.CatalogUsecase.ListDoctorsByDepartment(ctx, departmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctors)
}

func (ctrl *CatalogController) ListServicesByDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "departmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.CatalogUsecase.ListServicesByDepartment(ctx, departmentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceSuccessMessage, services)
}

func (ctrl *CatalogController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	specialization := r.URL.Query().Get("specialization")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.CatalogUsecase.ListDoctors(ctx, departmentID, specialization)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctors)
}

func (ctrl *CatalogController) ListServices(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, total, err := ctrl.CatalogUsecase.ListServices(ctx, departmentID, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetServiceSuccessMessage, paginationResponse, services)
}

func (ctrl *CatalogController) GetServiceDetail(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceID")
	if serviceID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "serviceID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CatalogUsecase.GetServiceDetail(ctx, serviceID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetServiceSuccessMessage, response)
}

func (ctrl *CatalogController) ListRooms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rooms, err := ctrl.CatalogUsecase.ListRooms(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRoomSuccessMessage, rooms)
}
