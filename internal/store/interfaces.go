package store

import (
	"context"

	"github.com/MKhiriev/ccm-project/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProjectRepository is the persistence contract of the project API.
type ProjectRepository interface {
	// CreateProject inserts p and returns it with the server-assigned ID.
	// A duplicate name yields [ErrProjectNameExists].
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)

	// GetProject returns the project with the given id or [ErrProjectNotFound].
	GetProject(ctx context.Context, id int64) (models.Project, error)

	// FindProjectByName returns the project named name or [ErrProjectNotFound].
	FindProjectByName(ctx context.Context, name string) (models.Project, error)

	// ListProjects returns every project ordered by name.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProjectStatus stores a new status for the project.
	UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error

	// SetRestart sets the restart flag of the project.
	SetRestart(ctx context.Context, id int64, restart bool) error

	// DeleteProject removes the project and all dependent rows in a single
	// transaction, children first.
	DeleteProject(ctx context.Context, id int64) (models.CascadeReport, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify tells whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
