package requests

type CreateAppointment struct {
	DoctorID        string `json:"doctor_id" validate:"required"`
	DepartmentID    string `json:"department_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"required,time_slot"`
	Symptoms        string `json:"symptoms,omitempty"`
	Reason          string `json:"reason,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type CancelAppointment struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type RescheduleAppointment struct {
	NewDate string `json:"new_date" validate:"required,datetime=2006-01-02"`
	NewTime string `json:"new_time" validate:"required,time_slot"`
	Reason  string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type AssignService struct {
	ServiceID string `json:"service_id" validate:"required"`
}

// AppointmentFilter carries the query parameters of listing endpoints.
type AppointmentFilter struct {
	Status   string
	DateFrom string
	DateTo   string
	Page     int
	PageSize int
}
