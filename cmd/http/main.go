package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"
	"myhealthcare-service/internal/app/delivery/http/routers"
	"myhealthcare-service/internal/app/drivers/database"
	"myhealthcare-service/internal/app/drivers/logger"
	"myhealthcare-service/internal/app/drivers/messaging"
	"myhealthcare-service/internal/app/drivers/storage"
	"myhealthcare-service/internal/app/services/core/ai"
	"myhealthcare-service/internal/app/services/core/appointments"
	"myhealthcare-service/internal/app/services/core/auth"
	"myhealthcare-service/internal/app/services/core/catalog"
	"myhealthcare-service/internal/app/services/core/medicalrecords"
	"myhealthcare-service/internal/app/services/core/session"
	"myhealthcare-service/internal/app/services/core/slot"
	"myhealthcare-service/internal/app/services/core/users"
	"myhealthcare-service/internal/app/services/shared/notifications"
	sharedredis "myhealthcare-service/internal/app/services/shared/redis"
	sharedstorage "myhealthcare-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQConnection,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	indexCtx, cancelIndexCtx := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndexCtx()

	err = appointments.EnsureIndexes(indexCtx, mongoDB)
	if err != nil {
		log.Fatalf("Error creating appointment indexes: %v", err)
	}
	err = medicalrecords.EnsureIndexes(indexCtx, mongoDB)
	if err != nil {
		log.Fatalf("Error creating medical record indexes: %v", err)
	}
	err = users.EnsureIndexes(indexCtx, mongoDB)
	if err != nil {
		log.Fatalf("Error creating user indexes: %v", err)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)
	notificationService, err := notifications.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.RabbitMQ.AppointmentEventsQueue,
		bootstrap.Logger,
	)
	if err != nil {
		return err
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.JWT.ExpTimeInHour)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	departmentMongoRepository := catalog.NewDepartmentMongoRepository(bootstrap.MongoDB)
	serviceMongoRepository := catalog.NewServiceMongoRepository(bootstrap.MongoDB)
	roomMongoRepository := catalog.NewRoomMongoRepository(bootstrap.MongoDB)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	medicalRecordMongoRepository := medicalrecords.NewMedicalRecordMongoRepository(bootstrap.MongoDB)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(departmentMongoRepository, serviceMongoRepository, roomMongoRepository, userMongoRepository, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Slots
	slotUsecase := slot.NewSlotUsecase(userMongoRepository, departmentMongoRepository, roomMongoRepository, appointmentMongoRepository, bootstrap.Logger)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		departmentMongoRepository,
		serviceMongoRepository,
		roomMongoRepository,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, sessionService, appointmentUsecase, slotUsecase)

	// Medical records
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(
		medicalRecordMongoRepository,
		appointmentMongoRepository,
		userMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.Logger, sessionService, medicalRecordUsecase, bootstrap.InternalConfig)

	// AI
	chatClient := ai.NewOpenRouterClient(bootstrap.InternalConfig.AI)
	aiUsecase := ai.NewAIUsecase(chatClient, departmentMongoRepository, redisRepository, bootstrap.Logger)
	aiController := controllers.NewAIController(bootstrap.Logger, aiUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		catalogController,
		appointmentController,
		medicalRecordController,
		aiController,
	)

	return nil
}
