package http

import "errors"

var (
	ErrInvalidJSON = errors.New("invalid JSON body")

	errNotFound         = errors.New("not found")
	errMethodNotAllowed = errors.New("method not allowed")
	errInternal         = errors.New("internal server error")
)
