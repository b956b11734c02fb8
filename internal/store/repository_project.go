package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/models"
)

// projectRepository is the SQL implementation of [ProjectRepository]. All
// queries are rendered by squirrel with the placeholder format of the
// embedded [*DB], so the same code serves PostgreSQL and SQLite.
//
// Every method obtains a context-scoped logger via [logger.FromContext].
type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.PasswordHash,
		&p.Status,
		&p.Restart,
		&p.OwnerID,
		&p.Exception,
		&p.Sim,
	)
	return p, err
}

// CreateProject inserts a new project row. The generated p_id is read back
// through the INSERT … RETURNING p_id clause.
//
// Error handling:
//   - unique violation on p_name → [ErrProjectNameExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *projectRepository) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProjectQuery(r.builder, p)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.CreateProject").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().
				Str("func", "projectRepository.CreateProject").
				Str("p_name", p.Name).
				Msg("project name already exists")
			return models.Project{}, ErrProjectNameExists
		}

		log.Err(err).
			Str("func", "projectRepository.CreateProject").
			Str("p_name", p.Name).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "projectRepository.CreateProject").
		Int64("p_id", p.ID).
		Str("p_name", p.Name).
		Msg("project created")

	return p, nil
}

// GetProject returns the project identified by id.
func (r *projectRepository) GetProject(ctx context.Context, id int64) (models.Project, error) {
	query, args, err := buildSelectProjectByIDQuery(r.builder, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "projectRepository.GetProject", query, args)
}

// FindProjectByName returns the project whose p_name equals name.
func (r *projectRepository) FindProjectByName(ctx context.Context, name string) (models.Project, error) {
	query, args, err := buildSelectProjectByNameQuery(r.builder, name)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "projectRepository.FindProjectByName", query, args)
}

func (r *projectRepository) getOne(ctx context.Context, funcName, query string, args []any) (models.Project, error) {
	log := logger.FromContext(ctx)

	p, err := scanProject(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", funcName).Any("args", args).Msg("project not found")
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to query project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

// ListProjects returns all projects ordered by p_name. An empty table
// yields an empty, non-nil slice.
func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllProjectsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		p, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "projectRepository.ListProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}

// UpdateProjectStatus sets project.status. Zero affected rows yields
// [ErrProjectNotFound].
func (r *projectRepository) UpdateProjectStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	query, args, err := buildUpdateProjectStatusQuery(r.builder, id, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingle(ctx, "projectRepository.UpdateProjectStatus", id, query, args)
}

// SetRestart sets project.restart. Zero affected rows yields
// [ErrProjectNotFound].
func (r *projectRepository) SetRestart(ctx context.Context, id int64, restart bool) error {
	query, args, err := buildSetRestartQuery(r.builder, id, restart)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execSingle(ctx, "projectRepository.SetRestart", id, query, args)
}

func (r *projectRepository) execSingle(ctx context.Context, funcName string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("p_id", id).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Int64("p_id", id).Msg("project not found")
		return ErrProjectNotFound
	}

	log.Debug().Str("func", funcName).Int64("p_id", id).Msg("project updated")
	return nil
}

// DeleteProject removes project id together with its network applications
// (and their DF / multiple-join modules) and device objects (and their DF
// objects).
//
// Everything runs in one transaction which is rolled back (via defer) on
// any failure, so a half-deleted project is never left behind. A missing
// project yields [ErrProjectNotFound] and deletes nothing.
func (r *projectRepository) DeleteProject(ctx context.Context, id int64) (models.CascadeReport, error) {
	log := logger.FromContext(ctx)

	var report models.CascadeReport

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "projectRepository.DeleteProject").Int64("p_id", id).Msg("failed to begin transaction")
		return report, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	existsQuery, existsArgs, err := buildProjectExistsQuery(r.builder, id)
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found int64
	if err = tx.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Str("func", "projectRepository.DeleteProject").Int64("p_id", id).Msg("project not found")
			return report, ErrProjectNotFound
		}
		log.Err(err).Str("func", "projectRepository.DeleteProject").Int64("p_id", id).Msg("failed to check project")
		return report, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for idx, step := range buildCascadeDeleteSteps(r.builder, id, &report) {
		query, args, buildErr := step.query.ToSql()
		if buildErr != nil {
			return models.CascadeReport{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "projectRepository.DeleteProject").
				Int64("p_id", id).
				Int("step", idx+1).
				Str("table", step.table).
				Stringer("classification", r.errorClassificator.Classify(execErr)).
				Msg("failed to delete dependent rows")
			return models.CascadeReport{}, fmt.Errorf("%w: delete from %s: %w", ErrExecutingStatement, step.table, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return models.CascadeReport{}, fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		*step.count = affected

		log.Debug().
			Str("func", "projectRepository.DeleteProject").
			Int64("p_id", id).
			Str("table", step.table).
			Int64("rows", affected).
			Msg("deleted dependent rows")
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "projectRepository.DeleteProject").Int64("p_id", id).Msg("failed to commit transaction")
		return models.CascadeReport{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "projectRepository.DeleteProject").
		Int64("p_id", id).
		Any("cascade", report).
		Msg("project deleted")

	return report, nil
}
