package requests

type UpsertMedicalRecord struct {
	Diagnosis     string            `json:"diagnosis,omitempty" validate:"omitempty,max=5000"`
	Prescription  string            `json:"prescription,omitempty" validate:"omitempty,max=5000"`
	TreatmentPlan string            `json:"treatment_plan,omitempty" validate:"omitempty,max=5000"`
	Notes         string            `json:"notes,omitempty" validate:"omitempty,max=5000"`
	FollowUpDate  string            `json:"follow_up_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	VitalSigns    map[string]string `json:"vital_signs,omitempty"`
}
