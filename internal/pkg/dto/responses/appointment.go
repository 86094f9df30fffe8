package responses

type AppointmentPatient struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type AppointmentDoctor struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	Title          string  `json:"title,omitempty"`
	Rating         float64 `json:"rating"`
}

type RescheduleOrigin struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Appointment struct {
	ID                 string             `json:"id"`
	Patient            AppointmentPatient `json:"patient"`
	Doctor             AppointmentDoctor  `json:"doctor"`
	Department         *Department        `json:"department,omitempty"`
	Service            *Service           `json:"service,omitempty"`
	Room               *Room              `json:"room,omitempty"`
	AppointmentDate    string             `json:"appointment_date"`
	AppointmentTime    string             `json:"appointment_time"`
	Status             string             `json:"status"`
	Symptoms           string             `json:"symptoms,omitempty"`
	Reason             string             `json:"reason,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	EstimatedFee       int64              `json:"estimated_fee"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
	CancelledAt        string             `json:"cancelled_at,omitempty"`
	RescheduledFrom    *RescheduleOrigin  `json:"rescheduled_from,omitempty"`
	CreatedAt          string             `json:"created_at"`
}

// FeeBreakdown accompanies assign-service responses.
type FeeBreakdown struct {
	HealthExaminationFee int64 `json:"health_examination_fee"`
	ServiceFee           int64 `json:"service_fee"`
	TotalFee             int64 `json:"total_fee"`
}

type AssignService struct {
	Appointment  Appointment  `json:"appointment"`
	FeeBreakdown FeeBreakdown `json:"fee_breakdown"`
}

type MyPatient struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	LastVisitDate    string `json:"last_visit_date,omitempty"`
	AppointmentCount int    `json:"appointment_count"`
}
