package routers

import (
	"net/http"
	"testing"

	"myhealthcare-service/internal/app/config"
	"myhealthcare-service/internal/app/delivery/http/controllers"
	"myhealthcare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAppointmentRoutes_Methods(t *testing.T) {
	mw := middlewares.NewMiddlewares(zap.NewNop(), new(MockSessionService), &config.InternalConfig{})
	router := chi.NewRouter()
	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, mw, &controllers.AppointmentController{}, &controllers.MedicalRecordController{})
	})

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/appointments/abc123/reschedule"},
		{http.MethodPost, "/appointments/abc123/reschedule"},
		{http.MethodPost, "/appointments/abc123/medical-record"},
		{http.MethodPut, "/appointments/abc123/medical-record"},
		{http.MethodGet, "/appointments/abc123/medical-record/attachments"},
	}
	for _, c := range cases {
		rctx := chi.NewRouteContext()
		assert.True(t, router.Match(rctx, c.method, c.path), "%s %s should be routed", c.method, c.path)
	}

	rctx := chi.NewRouteContext()
	assert.False(t, router.Match(rctx, http.MethodDelete, "/appointments/abc123/reschedule"))
}
