package controllers

import (
	"net/http"

	"myhealthcare-service/internal/app/contracts"
	"myhealthcare-service/internal/app/models"
	"myhealthcare-service/internal/pkg/constvars"
	"myhealthcare-service/internal/pkg/exceptions"
)

// sessionFromRequest loads the session placed in the request context by the
// authentication middleware.
func sessionFromRequest(r *http.Request, sessionService contracts.SessionService) (*models.Session, error) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return sessionService.ParseSessionData(r.Context(), sessionData)
}

func sessionIDFromRequest(r *http.Request) (string, error) {
	sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrMissingSessionData(nil)
	}
	return sessionID, nil
}
