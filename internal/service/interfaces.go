package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/ccm-project/models"
)

// ProjectService holds the business rules of the project API.
type ProjectService interface {
	// CreateProject stores a new project with default state and returns it.
	CreateProject(ctx context.Context, project models.NewProject) (models.Project, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, projectID int64) (models.Project, error)

	// UpdateProjectStatus sends the matching control command and persists
	// the new status only when the command was accepted.
	UpdateProjectStatus(ctx context.Context, update models.StatusUpdate) (models.Project, error)

	// DeleteProject removes the project and everything that depends on it.
	DeleteProject(ctx context.Context, projectID int64) (models.CascadeReport, error)

	// ReopenProject flags the project for restart by the execution engine.
	ReopenProject(ctx context.Context, projectID int64) error
}

// AppInfoService reports what is running: the configured app version and
// the build metadata injected at link time.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
// Implementations wrap an existing ProjectService to add behavior such as
// logging or validating.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService // returns a decorated ProjectService applying additional behavior
}
