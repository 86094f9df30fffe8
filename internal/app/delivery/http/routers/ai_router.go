package routers

import (
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAIRoutes(router chi.Router, middlewares *middlewares.Middlewares, aiController *controllers.AIController) {
	router.With(middlewares.Authenticate).Post("/suggest-department", aiController.SuggestDepartment)
	router.With(middlewares.Authenticate).Post("/chat", aiController.HealthChat)
}
