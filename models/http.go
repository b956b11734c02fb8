package models

// State values of the response envelope.
const (
	StateOK    = "ok"
	StateError = "error"
)

// CreateProjectRequest is the body of the create call.
//
// Name is decoded as any so that a non-string p_name can be told apart from a
// missing one and rejected with a validation error instead of a decode error.
type CreateProjectRequest struct {
	Name     any    `json:"p_name"`
	Password string `json:"p_pwd"`
}

// NewProject is the validated input handed to the service layer.
type NewProject struct {
	Name     string `validate:"required,visible"`
	Password string
	OwnerID  int64 `validate:"gt=0"`
}

// UpdateProjectRequest is the body of the status update call. Status is
// decoded as any so that a non-string value reaches the status check instead
// of failing the decode.
type UpdateProjectRequest struct {
	Status any `json:"status"`
}

// RequestedStatus returns the requested status, or an empty (invalid) one
// when Status is not a string.
func (r UpdateProjectRequest) RequestedStatus() ProjectStatus {
	s, _ := r.Status.(string)
	return ProjectStatus(s)
}

// StatusUpdate is a status change for a single project.
type StatusUpdate struct {
	ProjectID int64         `validate:"gt=0"`
	Status    ProjectStatus `validate:"oneof=on off"`
}

// ErrorResponse is the envelope returned for every failed call.
type ErrorResponse struct {
	State  string `json:"state"`
	Reason string `json:"reason"`
}

// ProjectIDResponse is returned by create, delete and reopen.
type ProjectIDResponse struct {
	State   string `json:"state"`
	ID      int64  `json:"p_id"`
	Restart *bool  `json:"restart,omitempty"`
}

// ProjectStatusResponse is returned by the status update call.
type ProjectStatusResponse struct {
	State  string        `json:"state"`
	ID     int64         `json:"p_id"`
	Status ProjectStatus `json:"status"`
}

// ProjectResponse is returned by the get call.
type ProjectResponse struct {
	State string  `json:"state"`
	Data  Project `json:"data"`
}

// BuildInfoResponse is returned by the build info call.
type BuildInfoResponse struct {
	State   string `json:"state"`
	Version string `json:"version"`
	Build   struct {
		Version string `json:"version"`
		Date    string `json:"date"`
		Commit  string `json:"commit"`
	} `json:"build"`
}

// ProjectListResponse is returned by the list call. Data is never null.
type ProjectListResponse struct {
	State string    `json:"state"`
	Data  []Project `json:"data"`
}
