package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrProjectNameExists = errors.New("project name already exists")
	ErrProjectNotFound   = errors.New("Project not found.") //nolint:staticcheck // returned to clients verbatim
	ErrInvalidStatus     = errors.New("invalid status")
	ErrPasswordTooLong   = errors.New("password must not exceed 72 bytes")

	// ErrControlChannel wraps every failure of the control channel. The
	// status of the project is left unchanged when it is returned.
	ErrControlChannel = errors.New("control channel failure")
)
