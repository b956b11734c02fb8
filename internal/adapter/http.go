package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/internal/utils"
)

type command string

const (
	commandResume  command = "resume"
	commandSuspend command = "suspend"
)

const httpChannelName = "http"

type httpControlChannel struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPControlChannel constructs a [ControlChannel] that posts commands to
// {cfg.HTTPAddress}/api/control/{p_id}/{resume|suspend}. A bare host:port
// address is treated as http.
func NewHTTPControlChannel(cfg config.Control, logger *logger.Logger) (ControlChannel, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidControlAddress, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Info().Str("base_url", baseURL).Msg("using http control channel")

	return &httpControlChannel{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Resume implements [ControlChannel].
func (h *httpControlChannel) Resume(ctx context.Context, projectID int64) error {
	return h.send(ctx, projectID, commandResume)
}

// Suspend implements [ControlChannel].
func (h *httpControlChannel) Suspend(ctx context.Context, projectID int64) error {
	return h.send(ctx, projectID, commandSuspend)
}

func (h *httpControlChannel) send(ctx context.Context, projectID int64, cmd command) (err error) {
	log := logger.FromContext(ctx)
	defer func() { observeCommand(httpChannelName, cmd, err) }()

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("p_id", strconv.FormatInt(projectID, 10)).
		SetPathParam("command", string(cmd)).
		Post("/api/control/{p_id}/{command}")
	if err != nil {
		log.Err(err).
			Str("func", "httpControlChannel.send").
			Int64("p_id", projectID).
			Str("command", string(cmd)).
			Msg("control request failed")
		return fmt.Errorf("%w: %s request: %w", ErrControlChannelUnavailable, cmd, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Err(err).
			Str("func", "httpControlChannel.send").
			Int64("p_id", projectID).
			Str("command", string(cmd)).
			Int("status", resp.StatusCode()).
			Msg("control command not accepted")
		return err
	}

	log.Info().
		Str("func", "httpControlChannel.send").
		Int64("p_id", projectID).
		Str("command", string(cmd)).
		Msg("control command delivered")
	return nil
}
