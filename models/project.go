// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProjectStatus is the running state of a project as seen by the control
// channel. Only [StatusOn] and [StatusOff] are valid values.
type ProjectStatus string

const (
	// StatusOn means the project is running (resumed).
	StatusOn ProjectStatus = "on"
	// StatusOff means the project is suspended.
	StatusOff ProjectStatus = "off"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	return s == StatusOn || s == StatusOff
}

// SimulationFlag tells whether a project runs against simulated devices.
type SimulationFlag string

const (
	SimOn  SimulationFlag = "on"
	SimOff SimulationFlag = "off"
)

// Project is a single network-application project managed by CCM.
//
// PasswordHash is never serialized: list and get responses must not leak it.
type Project struct {
	// ID is the server-assigned primary key (p_id).
	ID int64 `json:"p_id"`

	// Name is the unique, non-blank project name (p_name).
	Name string `json:"p_name"`

	// PasswordHash is the bcrypt hash of the project password (pwd).
	PasswordHash string `json:"-"`

	// Status is the current running state.
	Status ProjectStatus `json:"status"`

	// Restart is set when the execution engine must reopen the project.
	Restart bool `json:"restart"`

	// OwnerID is the identifier of the owning user (u_id).
	OwnerID int64 `json:"u_id"`

	// Exception holds the last error text reported by the execution engine.
	Exception string `json:"exception"`

	// Sim tells whether the project runs in simulation mode.
	Sim SimulationFlag `json:"sim"`
}

// TableName returns the name of the database table associated with Project.
func (p Project) TableName() string {
	return "project"
}
