package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"datetime":  "must match the format %s",
	"password":  "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":      "must be either 'doctor' or 'patient'",
	"time_slot": "must be a half-hour slot between 08:00 and 16:30",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"gt":       true,
	"gte":      true,
	"datetime": true,
}
