package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrProjectNameRequired  = errors.New("p_name is required and must be a string")
	ErrProjectNameInvisible = errors.New("Project name must be visible.") //nolint:staticcheck // returned to clients verbatim
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidOwnerID       = errors.New("invalid owner id")
)
