package routers

import (
	"athena-relay-service/internal/app/delivery/http/controllers"
	"athena-relay-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRegistrationRoutes(router chi.Router, patientRegistrationController *controllers.PatientRegistrationController) {
	router.Post(constvars.RouteRegister, patientRegistrationController.RegisterPatient)
}
