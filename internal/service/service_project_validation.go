package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ccm-project/internal/validators"
	"github.com/MKhiriev/ccm-project/models"
)

// ProjectValidationService checks incoming models before handing them to
// the wrapped ProjectService.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, project models.NewProject) (models.Project, error) {
	// owner id may still be zero here, the inner service fills in the default
	if err := v.validator.Validate(ctx, project, validators.FieldName); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateProject(ctx, project)
}

func (v *ProjectValidationService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return v.inner.ListProjects(ctx)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	if projectID <= 0 {
		return models.Project{}, ErrProjectNotFound
	}

	return v.inner.GetProject(ctx, projectID)
}

// UpdateProjectStatus validates only the id: an unknown project must be
// reported before an invalid status.
func (v *ProjectValidationService) UpdateProjectStatus(ctx context.Context, update models.StatusUpdate) (models.Project, error) {
	if err := v.validator.Validate(ctx, update, validators.FieldProjectID); err != nil {
		return models.Project{}, ErrProjectNotFound
	}

	return v.inner.UpdateProjectStatus(ctx, update)
}

func (v *ProjectValidationService) DeleteProject(ctx context.Context, projectID int64) (models.CascadeReport, error) {
	if projectID <= 0 {
		return models.CascadeReport{}, ErrProjectNotFound
	}

	return v.inner.DeleteProject(ctx, projectID)
}

func (v *ProjectValidationService) ReopenProject(ctx context.Context, projectID int64) error {
	if projectID <= 0 {
		return ErrProjectNotFound
	}

	return v.inner.ReopenProject(ctx, projectID)
}

func (v *ProjectValidationService) Wrap(wrapper ProjectService) ProjectService {
	v.inner = wrapper
	return v
}
