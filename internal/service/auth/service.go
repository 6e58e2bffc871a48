package auth

import (
	"context"

	"civic_backend/internal/cache"
	"civic_backend/internal/config"
	"civic_backend/internal/repository"
	"civic_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	otpStore    *cache.OTPStore
	blocklist   *cache.Blocklist
	sender      service.OTPSender
	jwtCfg      config.JWTConfig
	otpCfg      config.OTPConfig
	log         zerolog.Logger
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	otpStore *cache.OTPStore,
	blocklist *cache.Blocklist,
	sender service.OTPSender,
	jwtCfg config.JWTConfig,
	otpCfg config.OTPConfig,
	log zerolog.Logger,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		otpStore:    otpStore,
		blocklist:   blocklist,
		sender:      sender,
		jwtCfg:      jwtCfg,
		otpCfg:      otpCfg,
		log:         log,
	}
}

// LogSender - OTP delivery stub that writes codes to the log.
// Real delivery is an external collaborator.
type LogSender struct {
	Log zerolog.Logger
}

func (s LogSender) Send(_ context.Context, phone string, code string) error {
	s.Log.Info().Str("phone", phone).Str("code", code).Msg("otp issued")
	return nil
}
