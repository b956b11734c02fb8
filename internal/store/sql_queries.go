package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ccm-project/models"
)

const (
	projectTable            = "project"
	networkApplicationTable = "network_application"
	dfModuleTable           = "df_module"
	multipleJoinModuleTable = "multiple_join_module"
	deviceObjectTable       = "device_object"
	dfObjectTable           = "dfobject"
)

// projectColumns is the column order every project SELECT scans in.
var projectColumns = []string{"p_id", "p_name", "pwd", "status", "restart", "u_id", "exception", "sim"}

func buildInsertProjectQuery(b sq.StatementBuilderType, p models.Project) (string, []any, error) {
	return b.Insert(projectTable).
		Columns("p_name", "pwd", "status", "restart", "u_id", "exception", "sim").
		Values(p.Name, p.PasswordHash, string(p.Status), p.Restart, p.OwnerID, p.Exception, string(p.Sim)).
		Suffix("RETURNING p_id").
		ToSql()
}

func buildSelectProjectByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(projectColumns...).
		From(projectTable).
		Where(sq.Eq{"p_id": id}).
		ToSql()
}

func buildSelectProjectByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(projectColumns...).
		From(projectTable).
		Where(sq.Eq{"p_name": name}).
		ToSql()
}

func buildSelectAllProjectsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(projectColumns...).
		From(projectTable).
		OrderBy("p_name").
		ToSql()
}

func buildUpdateProjectStatusQuery(b sq.StatementBuilderType, id int64, status models.ProjectStatus) (string, []any, error) {
	return b.Update(projectTable).
		Set("status", string(status)).
		Where(sq.Eq{"p_id": id}).
		ToSql()
}

func buildSetRestartQuery(b sq.StatementBuilderType, id int64, restart bool) (string, []any, error) {
	return b.Update(projectTable).
		Set("restart", restart).
		Where(sq.Eq{"p_id": id}).
		ToSql()
}

func buildProjectExistsQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("p_id").
		From(projectTable).
		Where(sq.Eq{"p_id": id}).
		ToSql()
}

// cascadeStep is one DELETE of a project removal. count points at the
// [models.CascadeReport] field that receives the number of affected rows.
type cascadeStep struct {
	table string
	query sq.DeleteBuilder
	count *int64
}

// buildCascadeDeleteSteps returns the DELETE statements removing project id
// and everything that hangs off it, in execution order: modules of each
// network application, the network applications, the DF objects of each
// device object, the device objects, and finally the project row.
func buildCascadeDeleteSteps(b sq.StatementBuilderType, id int64, report *models.CascadeReport) []cascadeStep {
	byNetworkApp := sq.Expr("na_id IN (SELECT na_id FROM "+networkApplicationTable+" WHERE p_id = ?)", id)
	byDeviceObject := sq.Expr("do_id IN (SELECT do_id FROM "+deviceObjectTable+" WHERE p_id = ?)", id)
	byProject := sq.Eq{"p_id": id}

	return []cascadeStep{
		{table: multipleJoinModuleTable, query: b.Delete(multipleJoinModuleTable).Where(byNetworkApp), count: &report.MultipleJoinModules},
		{table: dfModuleTable, query: b.Delete(dfModuleTable).Where(byNetworkApp), count: &report.DFModules},
		{table: networkApplicationTable, query: b.Delete(networkApplicationTable).Where(byProject), count: &report.NetworkApps},
		{table: dfObjectTable, query: b.Delete(dfObjectTable).Where(byDeviceObject), count: &report.DFObjects},
		{table: deviceObjectTable, query: b.Delete(deviceObjectTable).Where(byProject), count: &report.DeviceObjects},
		{table: projectTable, query: b.Delete(projectTable).Where(byProject), count: &report.Projects},
	}
}
