package handler

import (
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/handler/http"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/service"
)

// Handlers groups the transports of the project API. HTTP is the only one.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().Str("http_address", cfg.HTTPAddress).Msg("creating http handlers")

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
