package constvars

// zap field keys shared across the app
const (
	LoggingRequestIDKey     = "request_id"
	LoggingSessionDataKey   = "session_data"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingQueryParamsKey   = "query_params"
	LoggingResponseCountKey = "response_count"
	LoggingUserIDKey        = "user_id"
	LoggingDoctorIDKey      = "doctor_id"
	LoggingPatientIDKey     = "patient_id"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingDepartmentIDKey  = "department_id"
	LoggingServiceIDKey     = "service_id"
	LoggingDateKey          = "date"
	LoggingTimeKey          = "time"
	LoggingStatusKey        = "status"
	LoggingQueueKey         = "queue"
	LoggingObjectKeyKey     = "object_key"
)
