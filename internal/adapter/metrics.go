package adapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

var controlCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ccm_control_commands_total",
	Help: "Control channel commands sent to the execution engine by command and outcome",
}, []string{"channel", "command", "outcome"})

func observeCommand(channel string, cmd command, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	controlCommandsTotal.WithLabelValues(channel, string(cmd), outcome).Inc()
}
