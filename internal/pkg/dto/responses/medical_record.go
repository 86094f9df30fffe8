package responses

type RecordAttachment struct {
	ObjectKey   string `json:"object_key"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url,omitempty"`
}

type MedicalRecord struct {
	ID            string             `json:"id"`
	AppointmentID string             `json:"appointment_id"`
	Diagnosis     string             `json:"diagnosis,omitempty"`
	Prescription  string             `json:"prescription,omitempty"`
	TreatmentPlan string             `json:"treatment_plan,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	FollowUpDate  string             `json:"follow_up_date,omitempty"`
	VitalSigns    map[string]string  `json:"vital_signs,omitempty"`
	Attachments   []RecordAttachment `json:"attachments,omitempty"`
	CreatedByName string             `json:"created_by_name,omitempty"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}
