package models

// NetworkApplication is a network application placed inside a project.
// Its DF modules and multiple-join modules are owned through NetworkAppID.
type NetworkApplication struct {
	ID        int64  `json:"na_id"`
	ProjectID int64  `json:"p_id"`
	Name      string `json:"na_name"`
	Index     int    `json:"na_idx"`
}

// DFModule is a device-feature module attached to a network application.
type DFModule struct {
	NetworkAppID int64 `json:"na_id"`
	DFObjectID   int64 `json:"dfo_id"`
}

// MultipleJoinModule is a join module attached to a network application.
type MultipleJoinModule struct {
	NetworkAppID int64 `json:"na_id"`
	ParamIndex   int   `json:"param_i"`
}

// DeviceObject is a device placed inside a project.
type DeviceObject struct {
	ID        int64  `json:"do_id"`
	ProjectID int64  `json:"p_id"`
	ModelName string `json:"dm_name"`
	Index     int    `json:"do_idx"`
}

// DFObject is a device feature instance owned by a device object.
type DFObject struct {
	ID             int64  `json:"dfo_id"`
	DeviceObjectID int64  `json:"do_id"`
	Name           string `json:"df_name"`
}

// CascadeReport counts the rows removed by a project delete, table by table.
type CascadeReport struct {
	MultipleJoinModules int64 `json:"multiple_join_modules"`
	DFModules           int64 `json:"df_modules"`
	NetworkApps         int64 `json:"network_applications"`
	DFObjects           int64 `json:"df_objects"`
	DeviceObjects       int64 `json:"device_objects"`
	Projects            int64 `json:"projects"`
}
