package config

type InternalConfig struct {
	App      App
	JWT      JWT
	AI       AI
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	MaxTimeRequestsPerSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AI struct {
	BaseUrl              string
	APIKey               string
	Model                string
	MaxRequestsPerMinute int
	TimeoutInSeconds     int
}

type AppMinio struct {
	BucketName                          string
	AttachmentMaxUploadSizeInMB         int64
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppRabbitMQ struct {
	AppointmentEventsQueue string
}
