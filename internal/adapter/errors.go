package adapter

import "errors"

var (
	// ErrControlChannelRejected is returned when the engine answers a command
	// with a 4xx status.
	ErrControlChannelRejected = errors.New("control command rejected")

	// ErrControlChannelUnavailable is returned when the engine cannot be
	// reached or answers with a 5xx status.
	ErrControlChannelUnavailable = errors.New("control channel unavailable")

	ErrInvalidControlAddress = errors.New("invalid control channel address")
)
