// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models before they reach the service
// and storage layers.
//
// Validation failures are reported as the sentinel errors of this package so
// that the HTTP layer can map them to status codes with errors.Is.
package validators

import "context"

// Validator validates an arbitrary model. Optional field names restrict the
// check to a subset of the model's fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
