package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY           ContextKey = "sessionID"
)

// User roles
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Appointment statuses
const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"

	// Legacy alias still accepted as an incoming status filter.
	AppointmentStatusUpcoming = "upcoming"
)

// Booking policy
const (
	SlotStartHour               = 8
	SlotStartMinute             = 0
	SlotEndHour                 = 16
	SlotEndMinute               = 30
	SlotStepMinutes             = 30
	SlotCount                   = 18
	BookingMaxDaysAhead         = 30
	CancellationWindowInHours   = 24
	AppointmentDateFormat       = "2006-01-02"
	AppointmentTimeFormat       = "15:04"
	AppointmentDateTimeFormat   = "2006-01-02 15:04"
	DefaultPageSize             = 10
	MaxPageSize                 = 100
	AppPaginationUrlFormat      = "%s?page=%d&page_size=%d"
	DepartmentsCacheKey         = "ai:departments"
	DepartmentsCacheTTLInSecond = 3600
	SessionKeyPrefix            = "session:"
)

// Mongo collections
const (
	MongoCollectionUsers          = "users"
	MongoCollectionDepartments    = "departments"
	MongoCollectionServices       = "services"
	MongoCollectionRooms          = "rooms"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionMedicalRecords = "medical_records"
)

const ResponseUnknown = "unknown"
