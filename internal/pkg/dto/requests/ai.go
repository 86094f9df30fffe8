package requests

type SuggestDepartment struct {
	Symptoms string `json:"symptoms" validate:"required,min=3,max=2000"`
}

type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type HealthChat struct {
	Message string     `json:"message" validate:"required,min=1,max=2000"`
	History []ChatTurn `json:"history,omitempty" validate:"omitempty,dive"`
}
