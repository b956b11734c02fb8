package http

import (
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/service"
	"github.com/MKhiriev/ccm-project/internal/validators"
)

// Handler serves the project API. Request bodies are checked by validator
// before they reach the services.
type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewProjectValidator(),
		logger:    logger,
	}
}
