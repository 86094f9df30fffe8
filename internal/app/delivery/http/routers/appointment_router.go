package routers

import (
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, _ *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/{doctorID}/available-slots", appointmentController.AvailableSlots)
}

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	medicalRecordController *controllers.MedicalRecordController,
) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.Create)
	router.Get("/", appointmentController.FindAll)
	router.Get("/my-patients", appointmentController.MyPatients)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Post("/{appointmentID}/cancel", appointmentController.Cancel)
	router.Put("/{appointmentID}/reschedule", appointmentController.Reschedule)
	router.Post("/{appointmentID}/reschedule", appointmentController.Reschedule)
	router.Post("/{appointmentID}/confirm", appointmentController.Confirm)
	router.Post("/{appointmentID}/complete", appointmentController.Complete)
	router.Post("/{appointmentID}/assign-service", appointmentController.AssignService)

	router.Put("/{appointmentID}/medical-record", medicalRecordController.Upsert)
	router.Post("/{appointmentID}/medical-record", medicalRecordController.Upsert)
	router.Get("/{appointmentID}/medical-record", medicalRecordController.FindByAppointmentID)
	router.Post("/{appointmentID}/medical-record/attachments", medicalRecordController.UploadAttachment)
	router.Get("/{appointmentID}/medical-record/attachments", medicalRecordController.ListAttachments)
}
