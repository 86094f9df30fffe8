package constvars

const (
	RegisterSuccessMessage            = "Registered successfully"
	LoginSuccessMessage               = "Logged in successfully"
	LogoutSuccessMessage              = "Logged out successfully"
	GetDepartmentSuccessMessage       = "Departments retrieved successfully"
	GetServiceSuccessMessage          = "Services retrieved successfully"
	GetDoctorSuccessMessage           = "Doctors retrieved successfully"
	GetRoomSuccessMessage             = "Rooms retrieved successfully"
	GetAvailableSlotsSuccessMessage   = "Available slots retrieved successfully"
	CreateAppointmentSuccessMessage   = "Appointment booked successfully"
	GetAppointmentSuccessMessage      = "Appointments retrieved successfully"
	CancelAppointmentSuccessMessage   = "Appointment cancelled successfully"
	RescheduleSuccessMessage          = "Appointment rescheduled successfully"
	AssignServiceSuccessMessage       = "Service assigned successfully"
	ConfirmAppointmentSuccessMessage  = "Appointment confirmed successfully"
	CompleteAppointmentSuccessMessage = "Appointment completed successfully"
	UpsertMedicalRecordSuccessMessage = "Medical record saved successfully"
	GetMedicalRecordSuccessMessage    = "Medical records retrieved successfully"
	GetMyPatientsSuccessMessage       = "Patients retrieved successfully"
	UploadAttachmentSuccessMessage    = "Attachment uploaded successfully"
	GetAttachmentSuccessMessage       = "Attachments retrieved successfully"
	SuggestDepartmentSuccessMessage   = "Department suggested successfully"
	HealthChatSuccessMessage          = "Reply generated successfully"
)
