package constvars

// Machine-readable error codes surfaced to clients as {detail, code}.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodePolicyViolation  = "POLICY_VIOLATION"
	ErrCodeInternal         = "INTERNAL"
	ErrCodeTimeout          = "TIMEOUT"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientSlotTaken                     = "this time slot is already taken, please choose another time"
	ErrClientNewSlotTaken                  = "new time slot is already taken, please choose another time"
	ErrClientCancellationWindow            = "cannot cancel appointment within 24 hours of scheduled time"
	ErrClientAppointmentInPast             = "cannot cancel an appointment that has already passed"
	ErrClientDateInPast                    = "cannot book appointments in the past"
	ErrClientDateTooFarAhead               = "cannot book appointments more than 30 days in advance"
	ErrClientInvalidDateFormat             = "invalid date format, use YYYY-MM-DD"
	ErrClientInvalidTimeSlot               = "appointment time must be a half-hour slot between 08:00 and 16:30"
	ErrClientDoctorNotFound                = "doctor not found or inactive"
	ErrClientDepartmentNotFound            = "department not found or inactive"
	ErrClientServiceNotFound               = "service not found or inactive"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientMedicalRecordNotFound         = "medical record not found"
	ErrClientOnlyPatientsCanBook           = "only patients can book appointments"
	ErrClientOnlyDoctorsAllowed            = "only doctors can perform this action"
	ErrClientNotYourAppointment            = "you can only manage your own appointments"
	ErrClientServiceWrongDepartment        = "service does not belong to the appointment's department"
	ErrClientAppointmentNotCompleted       = "medical record can only be written for a completed appointment"
	ErrClientAttachmentTooLarge            = "attachment exceeds the maximum allowed size"
	ErrClientAIUnavailable                 = "the assistant is unavailable right now, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseDate            = "cannot parse date"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthInvalidSession         = "session not found or expired"
	ErrDevMissingRequestID           = "request ID not found in context"
	ErrDevMissingSessionData         = "session data not found in context"
	ErrDevRoleNotPermitted           = "role is not permitted for this operation"
	ErrDevOwnershipMismatch          = "resource is not owned by the requester"
	ErrDevSlotUniqueIndexViolated    = "appointment slot unique index violated"
	ErrDevCancellationWindowBreached = "cancellation attempted inside the 24 hour window"
	ErrDevStatusTransitionNotAllowed = "appointment status transition not allowed"
	ErrDevAppointmentNotCompleted    = "appointment is not completed"
	ErrDevAttachmentTooLarge         = "attachment exceeds the configured upload size limit"
	ErrDevDocumentNotFound           = "document not found"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevDBFailedToFindDocument     = "failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document in database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments   = "failed to count documents in database"
	ErrDevDBStringNotObjectID        = "string is not a valid object ID"
	ErrDevRedisSetFailed             = "failed to set value to redis"
	ErrDevRedisGetFailed             = "failed to get value from redis"
	ErrDevRedisDeleteFailed          = "failed to delete value from redis"
	ErrDevRabbitMQPublishFailed      = "failed to publish message to rabbitmq"
	ErrDevMinioUploadFailed          = "failed to upload object to minio"
	ErrDevMinioPresignFailed         = "failed to presign minio object URL"
	ErrDevAIRequestFailed            = "AI completion request failed"
	ErrDevAIResponseNotJSON          = "AI response does not contain a JSON object"
	ErrDevURLParamIDValidationFailed = "failed to validate URL parameter: %s"
	ErrDevInvalidFormat              = "invalid format in %s"
)
