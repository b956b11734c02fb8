package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ccm-project/internal/service"
	"github.com/MKhiriev/ccm-project/internal/validators"
)

// errorStatusMap is checked in order; the first target matched with
// errors.Is decides the status and its text becomes the reason. Validation
// sentinels come before service.ErrInvalidDataProvided which wraps them.
var errorStatusMap = []struct {
	target error
	status int
}{
	{validators.ErrProjectNameRequired, http.StatusBadRequest},
	{validators.ErrProjectNameInvisible, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest},
	{service.ErrPasswordTooLong, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrProjectNotFound, http.StatusNotFound},
	{service.ErrProjectNameExists, http.StatusConflict},
	{service.ErrControlChannel, http.StatusBadGateway},
}

// mapError returns the status code and client-facing reason for err.
// Unknown errors are reported as 500 without leaking their text.
func mapError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.target.Error()
		}
	}

	return http.StatusInternalServerError, errInternal.Error()
}
