package routers

import (
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalRecordController *controllers.MedicalRecordController) {
	router.With(middlewares.Authenticate).Get("/mine", medicalRecordController.MyMedicalRecords)
}
