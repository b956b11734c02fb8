// Package adapter holds the clients the service uses to talk to the
// execution engine.
package adapter

import (
	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
)

// NewControlChannel picks the HTTP channel when cfg.HTTPAddress is set and
// the local one otherwise.
func NewControlChannel(cfg config.Control, logger *logger.Logger) (ControlChannel, error) {
	if cfg.HTTPAddress == "" {
		return NewLocalControlChannel(logger), nil
	}

	return NewHTTPControlChannel(cfg, logger)
}
