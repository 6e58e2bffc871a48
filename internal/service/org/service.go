package org

import (
	"civic_backend/internal/config"
	"civic_backend/internal/repository"
	"civic_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	orgRepo     repository.OrgRepository
	sessionRepo repository.SessionRepository
	jwtCfg      config.JWTConfig
}

func NewService(
	txManager trm.Manager,
	orgRepo repository.OrgRepository,
	sessionRepo repository.SessionRepository,
	jwtCfg config.JWTConfig,
) service.OrgService {
	return &serv{
		txManager:   txManager,
		orgRepo:     orgRepo,
		sessionRepo: sessionRepo,
		jwtCfg:      jwtCfg,
	}
}
