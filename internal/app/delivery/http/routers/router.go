package routers

import (
	"fmt"
	"time"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	appointmentController *controllers.AppointmentController,
	medicalRecordController *controllers.MedicalRecordController,
	aiController *controllers.AIController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/departments", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, catalogController)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, middlewares, catalogController)
			})

			r.Route("/rooms", func(r chi.Router) {
				attachRoomRoutes(r, middlewares, catalogController)
			})

			r.Route("/doctors", func(r chi.Router) {
				r.Get("/", catalogController.ListDoctors)
				attachSlotRoutes(r, middlewares, appointmentController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController, medicalRecordController)
			})

			r.Route("/medical-records", func(r chi.Router) {
				attachMedicalRecordRoutes(r, middlewares, medicalRecordController)
			})

			r.Route("/ai", func(r chi.Router) {
				attachAIRoutes(r, middlewares, aiController)
			})
		})
	})
}
