package routers

import (
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, _ *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListDepartments)
	router.Get("/{departmentID}", catalogController.GetDepartmentDetail)
	router.Get("/{departmentID}/doctors", catalogController.ListDoctorsByDepartment)
	router.Get("/{departmentID}/services", catalogController.ListServicesByDepartment)
}

func attachServiceRoutes(router chi.Router, _ *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListServices)
	router.Get("/{serviceID}", catalogController.GetServiceDetail)
}

func attachRoomRoutes(router chi.Router, _ *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Get("/", catalogController.ListRooms)
}
