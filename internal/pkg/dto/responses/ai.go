package responses

type SuggestedDepartment struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

type SuggestDepartment struct {
	Suggested    SuggestedDepartment   `json:"suggested_department"`
	Alternatives []SuggestedDepartment `json:"alternatives,omitempty"`
	Disclaimer   string                `json:"disclaimer"`
}

type HealthChat struct {
	Reply      string `json:"reply"`
	Disclaimer string `json:"disclaimer"`
}
