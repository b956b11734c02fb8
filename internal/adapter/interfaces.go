// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import "context"

// ControlChannel delivers run-state commands for a project to the execution
// engine. A nil error means the engine accepted the command.
type ControlChannel interface {
	// Resume asks the engine to start (or continue) running the project.
	Resume(ctx context.Context, projectID int64) error

	// Suspend asks the engine to pause the project.
	Suspend(ctx context.Context, projectID int64) error
}
