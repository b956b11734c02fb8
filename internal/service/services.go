package service

import (
	"fmt"

	"github.com/MKhiriev/ccm-project/internal/adapter"
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/store"
	"github.com/MKhiriev/ccm-project/models"
)

type Services struct {
	ProjectService ProjectService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. The project service is wrapped with
// request validation.
func NewServices(storages *store.Storages, control adapter.ControlChannel, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	projectService := NewProjectService(storages.ProjectRepository, control, cfg.App, logger)

	return &Services{
		ProjectService: NewProjectValidationService().Wrap(projectService),
		AppInfoService: appInfoService,
	}, nil
}
