// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ccm-project/internal/utils"
	"github.com/MKhiriev/ccm-project/models"
)

// notFound is the router's NotFound handler. It answers unknown paths, and
// project ids that do not match the integer pattern, with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{State: models.StateError, Reason: errNotFound.Error()}, http.StatusNotFound)
}

// methodNotAllowed is the router's MethodNotAllowed handler. chi has already
// set the Allow header when it is called.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{State: models.StateError, Reason: errMethodNotAllowed.Error()}, http.StatusMethodNotAllowed)
}
