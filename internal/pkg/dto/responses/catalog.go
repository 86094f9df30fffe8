package responses

type Department struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Icon                 string `json:"icon,omitempty"`
	Description          string `json:"description,omitempty"`
	HealthExaminationFee int64  `json:"health_examination_fee"`
}

type Service struct {
	ID           string `json:"id"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Price        int64  `json:"price"`
}

type Room struct {
	ID           string `json:"id"`
	RoomNumber   string `json:"room_number"`
	Floor        int    `json:"floor,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
}

type Doctor struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Specialization string  `json:"specialization"`
	Title          string  `json:"title,omitempty"`
	DepartmentID   string  `json:"department_id"`
	Rating         float64 `json:"rating"`
}

// DepartmentDetail expands a department with its services and doctors.
type DepartmentDetail struct {
	Department
	Services []Service `json:"services"`
	Doctors  []Doctor  `json:"doctors"`
}
