// Package config loads the settings of the project API server.
//
// Values come from environment variables (SERVER_*, STORAGE_DB_*, CONTROL_*,
// APP_*), then command-line flags, then an optional JSON file named by
// CONFIG or -c. A later source overrides the non-zero fields of an earlier
// one. Missing optional values receive defaults and the result is validated
// before [GetStructuredConfig] returns it.
package config
