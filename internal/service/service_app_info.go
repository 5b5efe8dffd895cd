// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

type appInfoService struct {
	info       string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Info == "" {
		return nil, ErrInfoIsNotSpecified
	}

	return &appInfoService{
		info:       cfg.Info,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{Info: s.info, Version: s.appVersion}
}
