package exceptions

import (
	"fmt"

	"myhealthcare-service/internal/pkg/constvars"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInvalidDateFormat = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientInvalidDateFormat, constvars.ErrDevCannotParseDate)
	}
	ErrInvalidTimeSlot = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientInvalidTimeSlot, constvars.ErrDevInvalidInput)
	}
	ErrDateInPast = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientDateInPast, constvars.ErrDevInvalidInput)
	}
	ErrDateTooFarAhead = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientDateTooFarAhead, constvars.ErrDevInvalidInput)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrCodeConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevInvalidInput)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}

	// Authorization
	ErrRoleNotPermitted = func(err error, detail string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied, detail, constvars.ErrDevRoleNotPermitted)
	}
	ErrOwnershipMismatch = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrCodePermissionDenied, constvars.ErrClientNotYourAppointment, constvars.ErrDevOwnershipMismatch)
	}

	// Not found
	ErrDoctorNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrDepartmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientDepartmentNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrServiceNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientServiceNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrAppointmentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrMedicalRecordNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientMedicalRecordNotFound, constvars.ErrDevDocumentNotFound)
	}

	// Booking conflicts and policy
	ErrSlotTaken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrCodeConflict, constvars.ErrClientSlotTaken, constvars.ErrDevSlotUniqueIndexViolated)
	}
	ErrNewSlotTaken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrCodeConflict, constvars.ErrClientNewSlotTaken, constvars.ErrDevSlotUniqueIndexViolated)
	}
	ErrCancellationWindow = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation, constvars.ErrClientCancellationWindow, constvars.ErrDevCancellationWindowBreached)
	}
	ErrAppointmentInPast = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation, constvars.ErrClientAppointmentInPast, constvars.ErrDevCancellationWindowBreached)
	}
	ErrStatusTransition = func(err error, detail string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation, detail, constvars.ErrDevStatusTransitionNotAllowed)
	}
	ErrServiceWrongDepartment = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodeValidation, constvars.ErrClientServiceWrongDepartment, constvars.ErrDevInvalidInput)
	}
	ErrAppointmentNotCompleted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrCodePolicyViolation, constvars.ErrClientAppointmentNotCompleted, constvars.ErrDevAppointmentNotCompleted)
	}
	ErrAttachmentTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrCodeValidation, constvars.ErrClientAttachmentTooLarge, constvars.ErrDevAttachmentTooLarge)
	}

	// Infrastructure
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrCodeTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBCountDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCountDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrCodeNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetFailed)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetFailed)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublishFailed)
	}
	ErrMinioUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMinioUploadFailed)
	}
	ErrMinioPresign = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrCodeInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMinioPresignFailed)
	}
	ErrAIRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrCodeInternal, constvars.ErrClientAIUnavailable, constvars.ErrDevAIRequestFailed)
	}
	ErrAIResponseNotJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrCodeInternal, constvars.ErrClientAIUnavailable, constvars.ErrDevAIResponseNotJSON)
	}
)
