// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/ccm-project/internal/adapter"
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/mock"
	"github.com/MKhiriev/ccm-project/internal/service"
	"github.com/MKhiriev/ccm-project/internal/store"
	"github.com/MKhiriev/ccm-project/internal/utils"
	"github.com/MKhiriev/ccm-project/internal/validators"
	"github.com/MKhiriev/ccm-project/models"
)

type fixture struct {
	repo    *mock.MockProjectRepository
	control *mock.MockControlChannel
	svc     service.ProjectService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	control := mock.NewMockControlChannel(ctrl)

	inner := service.NewProjectService(repo, control, config.App{DefaultOwnerID: 1}, logger.Nop())

	return fixture{
		repo:    repo,
		control: control,
		svc:     service.NewProjectValidationService().Wrap(inner),
	}
}

func existing(id int64) models.Project {
	return models.Project{ID: id, Name: "demo", Status: models.StatusOn, OwnerID: 1, Sim: models.SimOff}
}

// ─────────────────────────────────────────────
// CreateProject
// ─────────────────────────────────────────────

func TestCreateProject_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(models.Project{}, store.ErrProjectNotFound)
	f.repo.EXPECT().CreateProject(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Project) (models.Project, error) {
			assert.Equal(t, "demo", p.Name)
			assert.Equal(t, models.StatusOn, p.Status)
			assert.False(t, p.Restart)
			assert.Equal(t, int64(1), p.OwnerID)
			assert.Equal(t, "", p.Exception)
			assert.Equal(t, models.SimOff, p.Sim)
			assert.NotEqual(t, "secret", p.PasswordHash)
			assert.True(t, utils.CheckPassword(p.PasswordHash, "secret"))

			p.ID = 42
			return p, nil
		})

	created, err := f.svc.CreateProject(ctx, models.NewProject{Name: "  demo  ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestCreateProject_ExplicitOwnerKept(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(models.Project{}, store.ErrProjectNotFound)
	f.repo.EXPECT().CreateProject(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Project) (models.Project, error) {
			assert.Equal(t, int64(7), p.OwnerID)
			return p, nil
		})

	_, err := f.svc.CreateProject(ctx, models.NewProject{Name: "demo", OwnerID: 7})
	require.NoError(t, err)
}

func TestCreateProject_InvalidName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: validators.ErrProjectNameRequired},
		{name: "blank", input: "   ", wantErr: validators.ErrProjectNameInvisible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.CreateProject(context.Background(), models.NewProject{Name: tt.input})
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateProject_NameTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(existing(3), nil)

	_, err := f.svc.CreateProject(ctx, models.NewProject{Name: "demo"})
	assert.ErrorIs(t, err, service.ErrProjectNameExists)
}

func TestCreateProject_InsertRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(models.Project{}, store.ErrProjectNotFound)
	f.repo.EXPECT().CreateProject(ctx, gomock.Any()).Return(models.Project{}, store.ErrProjectNameExists)

	_, err := f.svc.CreateProject(ctx, models.NewProject{Name: "demo"})
	assert.ErrorIs(t, err, service.ErrProjectNameExists)
}

func TestCreateProject_LookupFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dbErr := errors.New("db down")

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(models.Project{}, dbErr)

	_, err := f.svc.CreateProject(ctx, models.NewProject{Name: "demo"})
	assert.ErrorIs(t, err, dbErr)
}

func TestCreateProject_PasswordTooLong(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindProjectByName(ctx, "demo").Return(models.Project{}, store.ErrProjectNotFound)

	_, err := f.svc.CreateProject(ctx, models.NewProject{Name: "demo", Password: strings.Repeat("p", 100)})
	assert.ErrorIs(t, err, service.ErrPasswordTooLong)
}

// ─────────────────────────────────────────────
// List / Get
// ─────────────────────────────────────────────

func TestListProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	projects := []models.Project{existing(1), existing(2)}

	f.repo.EXPECT().ListProjects(ctx).Return(projects, nil)

	got, err := f.svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, projects, got)
}

func TestGetProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetProject(ctx, int64(1)).Return(existing(1), nil)
	f.repo.EXPECT().GetProject(ctx, int64(2)).Return(models.Project{}, store.ErrProjectNotFound)

	got, err := f.svc.GetProject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = f.svc.GetProject(ctx, 2)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)

	// non-positive ids never reach the repository
	_, err = f.svc.GetProject(ctx, 0)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

// ─────────────────────────────────────────────
// UpdateProjectStatus
// ─────────────────────────────────────────────

func TestUpdateProjectStatus_Resume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := existing(5)
	p.Status = models.StatusOff

	gomock.InOrder(
		f.repo.EXPECT().GetProject(ctx, int64(5)).Return(p, nil),
		f.control.EXPECT().Resume(ctx, int64(5)).Return(nil),
		f.repo.EXPECT().UpdateProjectStatus(ctx, int64(5), models.StatusOn).Return(nil),
	)

	got, err := f.svc.UpdateProjectStatus(ctx, models.StatusUpdate{ProjectID: 5, Status: models.StatusOn})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOn, got.Status)
}

func TestUpdateProjectStatus_Suspend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.repo.EXPECT().GetProject(ctx, int64(5)).Return(existing(5), nil),
		f.control.EXPECT().Suspend(ctx, int64(5)).Return(nil),
		f.repo.EXPECT().UpdateProjectStatus(ctx, int64(5), models.StatusOff).Return(nil),
	)

	got, err := f.svc.UpdateProjectStatus(ctx, models.StatusUpdate{ProjectID: 5, Status: models.StatusOff})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOff, got.Status)
}

func TestUpdateProjectStatus_NotFoundBeforeInvalidStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetProject(ctx, int64(5)).Return(models.Project{}, store.ErrProjectNotFound)

	_, err := f.svc.UpdateProjectStatus(ctx, models.StatusUpdate{ProjectID: 5, Status: "bogus"})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestUpdateProjectStatus_InvalidStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetProject(ctx, int64(5)).Return(existing(5), nil)

	_, err := f.svc.UpdateProjectStatus(ctx, models.StatusUpdate{ProjectID: 5, Status: "bogus"})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestUpdateProjectStatus_ControlChannelFailureNotPersisted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetProject(ctx, int64(5)).Return(existing(5), nil)
	f.control.EXPECT().Suspend(ctx, int64(5)).Return(adapter.ErrControlChannelUnavailable)
	f.repo.EXPECT().UpdateProjectStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.UpdateProjectStatus(ctx, models.StatusUpdate{ProjectID: 5, Status: models.StatusOff})
	assert.ErrorIs(t, err, service.ErrControlChannel)
	assert.ErrorIs(t, err, adapter.ErrControlChannelUnavailable)
}

func TestUpdateProjectStatus_InvalidID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateProjectStatus(context.Background(), models.StatusUpdate{ProjectID: 0, Status: models.StatusOn})
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

// ─────────────────────────────────────────────
// Delete / Reopen
// ─────────────────────────────────────────────

func TestDeleteProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	report := models.CascadeReport{NetworkApps: 2, Projects: 1}

	f.repo.EXPECT().DeleteProject(ctx, int64(9)).Return(report, nil)
	f.repo.EXPECT().DeleteProject(ctx, int64(10)).Return(models.CascadeReport{}, store.ErrProjectNotFound)

	got, err := f.svc.DeleteProject(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	_, err = f.svc.DeleteProject(ctx, 10)
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestDeleteProject_StoreFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().DeleteProject(ctx, int64(9)).Return(models.CascadeReport{}, store.ErrCommitingTransaction)

	_, err := f.svc.DeleteProject(ctx, 9)
	assert.ErrorIs(t, err, store.ErrCommitingTransaction)
	assert.NotErrorIs(t, err, service.ErrProjectNotFound)
}

func TestReopenProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().SetRestart(ctx, int64(4), true).Return(nil)
	f.repo.EXPECT().SetRestart(ctx, int64(5), true).Return(store.ErrProjectNotFound)

	assert.NoError(t, f.svc.ReopenProject(ctx, 4))
	assert.ErrorIs(t, f.svc.ReopenProject(ctx, 5), service.ErrProjectNotFound)
	assert.ErrorIs(t, f.svc.ReopenProject(ctx, -1), service.ErrProjectNotFound)
}
