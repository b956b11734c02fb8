package service

import (
	"context"

	"github.com/MKhiriev/ccm-project/internal/config"
	"github.com/MKhiriev/ccm-project/internal/logger"
	"github.com/MKhiriev/ccm-project/models"
)

type appInfoService struct {
	version   string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", cfg.Version).
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("app info service created")

	return &appInfoService{
		version:   cfg.Version,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

func (s *appInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
