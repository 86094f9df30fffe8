package utils

import (
	"net/http"
	"strconv"

	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/dto/requests"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}
	if pageSize > constvars.MaxPageSize {
		pageSize = constvars.MaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildAppointmentFilterRequest(r *http.Request) *requests.AppointmentFilter {
	pagination := BuildPaginationRequest(r)

	status := r.URL.Query().Get("status")
	if status == constvars.AppointmentStatusUpcoming {
		status = constvars.AppointmentStatusBooked
	}

	return &requests.AppointmentFilter{
		Status:   status,
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
}
