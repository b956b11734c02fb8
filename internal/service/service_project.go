package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/ccm-project/internal/adapter"
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/store"
	"github.com/MKhiriev/ccm-project/internal/utils"
	"github.com/MKhiriev/ccm-project/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	control           adapter.ControlChannel

	defaultOwnerID int64

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, control adapter.ControlChannel, cfg config.App, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		control:           control,
		defaultOwnerID:    cfg.DefaultOwnerID,
		logger:            logger,
	}
}

// CreateProject trims the name, rejects duplicates, hashes the password and
// inserts the project as running, not flagged for restart, outside of
// simulation. A zero OwnerID is replaced with the configured default owner.
func (p *projectService) CreateProject(ctx context.Context, newProject models.NewProject) (models.Project, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(newProject.Name)

	_, err := p.projectRepository.FindProjectByName(ctx, name)
	switch {
	case err == nil:
		return models.Project{}, ErrProjectNameExists
	case !errors.Is(err, store.ErrProjectNotFound):
		return models.Project{}, fmt.Errorf("error checking project name: %w", err)
	}

	hash, err := utils.HashPassword(newProject.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.Project{}, ErrPasswordTooLong
	}
	if err != nil {
		return models.Project{}, err
	}

	ownerID := newProject.OwnerID
	if ownerID == 0 {
		ownerID = p.defaultOwnerID
	}

	created, err := p.projectRepository.CreateProject(ctx, models.Project{
		Name:         name,
		PasswordHash: hash,
		Status:       models.StatusOn,
		Restart:      false,
		OwnerID:      ownerID,
		Exception:    "",
		Sim:          models.SimOff,
	})
	if errors.Is(err, store.ErrProjectNameExists) {
		return models.Project{}, ErrProjectNameExists
	}
	if err != nil {
		return models.Project{}, fmt.Errorf("error creating project: %w", err)
	}

	log.Info().Str("func", "projectService.CreateProject").Int64("p_id", created.ID).Msg("project created")
	return created, nil
}

func (p *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return p.projectRepository.ListProjects(ctx)
}

func (p *projectService) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	project, err := p.projectRepository.GetProject(ctx, projectID)
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}

	return project, nil
}

// UpdateProjectStatus checks that the project exists before the status is
// validated. The control command runs ahead of the write, so a rejected
// command leaves the stored status untouched.
func (p *projectService) UpdateProjectStatus(ctx context.Context, update models.StatusUpdate) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := p.projectRepository.GetProject(ctx, update.ProjectID)
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}

	var controlErr error
	switch update.Status {
	case models.StatusOn:
		controlErr = p.control.Resume(ctx, update.ProjectID)
	case models.StatusOff:
		controlErr = p.control.Suspend(ctx, update.ProjectID)
	default:
		return models.Project{}, ErrInvalidStatus
	}
	if controlErr != nil {
		log.Err(controlErr).
			Str("func", "projectService.UpdateProjectStatus").
			Int64("p_id", update.ProjectID).
			Str("status", string(update.Status)).
			Msg("control channel failed, status not changed")
		return models.Project{}, fmt.Errorf("%w: %w", ErrControlChannel, controlErr)
	}

	if err = p.projectRepository.UpdateProjectStatus(ctx, update.ProjectID, update.Status); err != nil {
		return models.Project{}, mapStoreError(err)
	}

	project.Status = update.Status
	return project, nil
}

func (p *projectService) DeleteProject(ctx context.Context, projectID int64) (models.CascadeReport, error) {
	report, err := p.projectRepository.DeleteProject(ctx, projectID)
	if err != nil {
		return models.CascadeReport{}, mapStoreError(err)
	}

	return report, nil
}

func (p *projectService) ReopenProject(ctx context.Context, projectID int64) error {
	return mapStoreError(p.projectRepository.SetRestart(ctx, projectID, true))
}

func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrProjectNotFound):
		return ErrProjectNotFound
	case errors.Is(err, store.ErrProjectNameExists):
		return ErrProjectNameExists
	}

	return err
}
