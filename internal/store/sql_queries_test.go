package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ccm-project/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildInsertProjectQuery(t *testing.T) {
	p := models.Project{Name: "demo", PasswordHash: "h", Status: models.StatusOn, OwnerID: 1, Sim: models.SimOff}

	query, args, err := buildInsertProjectQuery(dollarBuilder, p)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO project")
	assert.Contains(t, query, "RETURNING p_id")
	assert.Contains(t, query, "$7")
	assert.Equal(t, []any{"demo", "h", "on", false, int64(1), "", "off"}, args)

	query, _, err = buildInsertProjectQuery(questionBuilder, p)
	require.NoError(t, err)
	assert.NotContains(t, query, "$1")
	assert.Contains(t, query, "?")
}

func TestBuildSelectAllProjectsQuery_OrderedByName(t *testing.T) {
	query, args, err := buildSelectAllProjectsQuery(dollarBuilder)
	require.NoError(t, err)
	assert.Equal(t, "SELECT p_id, p_name, pwd, status, restart, u_id, exception, sim FROM project ORDER BY p_name", query)
	assert.Empty(t, args)
}

func TestBuildUpdateQueries(t *testing.T) {
	query, args, err := buildUpdateProjectStatusQuery(questionBuilder, 9, models.StatusOff)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE project SET status = ? WHERE p_id = ?", query)
	assert.Equal(t, []any{"off", int64(9)}, args)

	query, args, err = buildSetRestartQuery(dollarBuilder, 9, true)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE project SET restart = $1 WHERE p_id = $2", query)
	assert.Equal(t, []any{true, int64(9)}, args)
}

func TestBuildCascadeDeleteSteps(t *testing.T) {
	var report models.CascadeReport
	steps := buildCascadeDeleteSteps(questionBuilder, 5, &report)

	wantTables := []string{
		multipleJoinModuleTable,
		dfModuleTable,
		networkApplicationTable,
		dfObjectTable,
		deviceObjectTable,
		projectTable,
	}
	require.Len(t, steps, len(wantTables))

	for i, step := range steps {
		assert.Equal(t, wantTables[i], step.table)

		query, args, err := step.query.ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "DELETE FROM "+wantTables[i])
		assert.Equal(t, []any{int64(5)}, args)

		*step.count = int64(i + 1)
	}

	assert.Equal(t, models.CascadeReport{
		MultipleJoinModules: 1,
		DFModules:           2,
		NetworkApps:         3,
		DFObjects:           4,
		DeviceObjects:       5,
		Projects:            6,
	}, report)
}

func TestBuildCascadeDeleteSteps_Subqueries(t *testing.T) {
	var report models.CascadeReport
	steps := buildCascadeDeleteSteps(dollarBuilder, 5, &report)

	query, _, err := steps[0].query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "na_id IN (SELECT na_id FROM network_application WHERE p_id = $1)")

	query, _, err = steps[3].query.ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "do_id IN (SELECT do_id FROM device_object WHERE p_id = $1)")
}
