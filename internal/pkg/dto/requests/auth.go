package requests

type Register struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role" validate:"required,role"`

	// Patient profile fields, used when role is patient.
	DateOfBirth     string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender          string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	InsuranceNumber string `json:"insurance_number,omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
