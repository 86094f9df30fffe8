package models

import "myhealthcare-service/internal/pkg/constvars"

// Session is the Redis-backed login state referenced from JWT claims.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleDoctor
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RolePatient
}

func (s *Session) IsAdmin() bool {
	return s.Role == constvars.RoleAdmin
}
