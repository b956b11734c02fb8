package adapter

import (
	"context"

	"github.com/MKhiriev/ccm-project/internal/logger"
)

const localChannelName = "local"

// localControlChannel accepts every command and only logs it. It is used
// when no execution engine address is configured.
type localControlChannel struct {
	logger *logger.Logger
}

// NewLocalControlChannel constructs the log-only [ControlChannel].
func NewLocalControlChannel(logger *logger.Logger) ControlChannel {
	logger.Warn().Msg("no control address configured, control commands will only be logged")
	return &localControlChannel{logger: logger}
}

func (l *localControlChannel) Resume(ctx context.Context, projectID int64) error {
	l.log(ctx, projectID, commandResume)
	return nil
}

func (l *localControlChannel) Suspend(ctx context.Context, projectID int64) error {
	l.log(ctx, projectID, commandSuspend)
	return nil
}

func (l *localControlChannel) log(_ context.Context, projectID int64, cmd command) {
	l.logger.Info().
		Str("func", "localControlChannel."+string(cmd)).
		Int64("p_id", projectID).
		Msg("control command accepted locally")
	observeCommand(localChannelName, cmd, nil)
}
