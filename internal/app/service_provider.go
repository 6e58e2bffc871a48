package app

import (
	"context"
	"os"

	authAPI "civic_backend/internal/api/auth"
	issueAPI "civic_backend/internal/api/issue"
	locationAPI "civic_backend/internal/api/location"
	apimw "civic_backend/internal/api/middleware"
	orgAPI "civic_backend/internal/api/org"
	"civic_backend/internal/cache"
	"civic_backend/internal/config"
	"civic_backend/internal/config/env"
	"civic_backend/internal/guard"
	"civic_backend/internal/repository"
	"civic_backend/internal/repository/issue_repo"
	"civic_backend/internal/repository/location_repo"
	"civic_backend/internal/repository/org_repo"
	"civic_backend/internal/repository/session_repo"
	"civic_backend/internal/repository/user_repo"
	"civic_backend/internal/repository/vote_repo"
	"civic_backend/internal/service"
	"civic_backend/internal/service/auth"
	"civic_backend/internal/service/issue"
	"civic_backend/internal/service/location"
	"civic_backend/internal/service/org"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const guardConfigPath = "config.yaml"

type ServiceProvider struct {
	logger *zerolog.Logger

	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client
	otpStore    *cache.OTPStore
	blocklist   *cache.Blocklist

	// Auth bits
	jwtConfig   config.JWTConfig
	otpConfig   config.OTPConfig
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	authServ    service.AuthService
	authHand    *authAPI.Handler

	// Organization bits
	orgRepo repository.OrgRepository
	orgServ service.OrgService
	orgHand *orgAPI.Handler

	// Issue bits
	issueRepo repository.IssueRepository
	voteRepo  repository.VoteRepository
	issueServ service.IssueService
	issueHand *issueAPI.Handler

	// Location bits
	locationRepo repository.LocationRepository
	locationServ service.LocationService
	locationHand *locationAPI.Handler

	// Edge guard
	guardConfig config.GuardConfig
	edgeGuard   *guard.Guard

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() zerolog.Logger {
	if sp.logger == nil {
		l := zerolog.New(os.Stdout).With().Timestamp().Logger()
		sp.logger = &l
	}
	return *sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil {
		rdb := redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Address(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) OTPStore(ctx context.Context) *cache.OTPStore {
	if sp.otpStore == nil {
		sp.otpStore = cache.NewOTPStore(sp.RedisClient(ctx))
	}
	return sp.otpStore
}

func (sp *ServiceProvider) Blocklist(ctx context.Context) *cache.Blocklist {
	if sp.blocklist == nil {
		sp.blocklist = cache.NewBlocklist(sp.RedisClient(ctx))
	}
	return sp.blocklist
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) OTPConfig() config.OTPConfig {
	if sp.otpConfig == nil {
		cfg, err := env.NewOTPConfig()
		if err != nil {
			panic("failed to get otp config: " + err.Error())
		}
		sp.otpConfig = cfg
	}
	return sp.otpConfig
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) SessionRepo(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.DBClient(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.SessionRepo(ctx),
			sp.OTPStore(ctx),
			sp.Blocklist(ctx),
			auth.LogSender{Log: sp.Logger()},
			sp.JWTConfig(),
			sp.OTPConfig(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(ctx),
			JWTCfg: sp.JWTConfig(),
			Log:    sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) OrgRepo(ctx context.Context) repository.OrgRepository {
	if sp.orgRepo == nil {
		sp.orgRepo = org_repo.NewOrgRepository(sp.DBClient(ctx))
	}
	return sp.orgRepo
}

func (sp *ServiceProvider) OrgService(ctx context.Context) service.OrgService {
	if sp.orgServ == nil {
		sp.orgServ = org.NewService(
			sp.TXManager(ctx),
			sp.OrgRepo(ctx),
			sp.SessionRepo(ctx),
			sp.JWTConfig(),
		)
	}
	return sp.orgServ
}

func (sp *ServiceProvider) OrgHandler(ctx context.Context) *orgAPI.Handler {
	if sp.orgHand == nil {
		sp.orgHand = orgAPI.NewHandler(orgAPI.HandlerDeps{
			Serv: sp.OrgService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.orgHand
}

func (sp *ServiceProvider) IssueRepo(ctx context.Context) repository.IssueRepository {
	if sp.issueRepo == nil {
		sp.issueRepo = issue_repo.NewIssueRepository(sp.DBClient(ctx))
	}
	return sp.issueRepo
}

func (sp *ServiceProvider) VoteRepo(ctx context.Context) repository.VoteRepository {
	if sp.voteRepo == nil {
		sp.voteRepo = vote_repo.NewVoteRepository(sp.DBClient(ctx))
	}
	return sp.voteRepo
}

func (sp *ServiceProvider) IssueService(ctx context.Context) service.IssueService {
	if sp.issueServ == nil {
		sp.issueServ = issue.NewService(
			sp.TXManager(ctx),
			sp.IssueRepo(ctx),
			sp.VoteRepo(ctx),
		)
	}
	return sp.issueServ
}

func (sp *ServiceProvider) IssueHandler(ctx context.Context) *issueAPI.Handler {
	if sp.issueHand == nil {
		sp.issueHand = issueAPI.NewHandler(issueAPI.HandlerDeps{
			Serv: sp.IssueService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.issueHand
}

func (sp *ServiceProvider) LocationRepo(ctx context.Context) repository.LocationRepository {
	if sp.locationRepo == nil {
		sp.locationRepo = location_repo.NewLocationRepository(sp.DBClient(ctx))
	}
	return sp.locationRepo
}

func (sp *ServiceProvider) LocationService(ctx context.Context) service.LocationService {
	if sp.locationServ == nil {
		sp.locationServ = location.NewService(sp.LocationRepo(ctx))
	}
	return sp.locationServ
}

func (sp *ServiceProvider) LocationHandler(ctx context.Context) *locationAPI.Handler {
	if sp.locationHand == nil {
		sp.locationHand = locationAPI.NewHandler(locationAPI.HandlerDeps{
			Serv: sp.LocationService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.locationHand
}

func (sp *ServiceProvider) GuardConfig() config.GuardConfig {
	if sp.guardConfig == nil {
		cfg, err := env.NewGuardConfigFromYAML(guardConfigPath)
		if err != nil {
			panic("failed to get guard config: " + err.Error())
		}
		sp.guardConfig = cfg
	}
	return sp.guardConfig
}

func (sp *ServiceProvider) EdgeGuard() *guard.Guard {
	if sp.edgeGuard == nil {
		sp.edgeGuard = guard.New(
			sp.GuardConfig(),
			guard.JWTVerifier{Secret: sp.JWTConfig().AccessTokenSecretKey()},
			sp.Logger(),
		)
	}
	return sp.edgeGuard
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))

		// Edge guard runs in front of everything; API routes and static
		// assets are in its exclusion set.
		r.Use(sp.EdgeGuard().Middleware)

		authenticate := apimw.Authenticate(sp.AuthService(ctx))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/v1/auth", func(rr chi.Router) {
			rr.Post("/send-otp", authHandler.SendOTP)
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
			rr.With(authenticate).Get("/me", authHandler.Me)
		})

		// Organization endpoints
		orgHandler := sp.OrgHandler(ctx)
		r.Route("/v1/organizations", func(rr chi.Router) {
			rr.Use(authenticate)
			rr.Post("/", orgHandler.Create)
			rr.Get("/", orgHandler.List)
			rr.Post("/switch", orgHandler.Switch)
		})

		// Issue endpoints
		issueHandler := sp.IssueHandler(ctx)
		r.Route("/v1/issues", func(rr chi.Router) {
			rr.Use(authenticate)
			rr.Get("/", issueHandler.List)
			rr.Get("/{id}", issueHandler.Get)
			rr.Patch("/{id}", issueHandler.Update)
			rr.Delete("/{id}", issueHandler.Delete)
			rr.Post("/{id}/vote", issueHandler.Vote)
			rr.With(apimw.RequireOrganization).Post("/", issueHandler.Create)
			rr.With(apimw.RequireOrganization).Patch("/{id}/status", issueHandler.UpdateStatus)
		})

		// Location endpoints, read-only and public
		locationHandler := sp.LocationHandler(ctx)
		r.Route("/v1/locations", func(rr chi.Router) {
			rr.Get("/states", locationHandler.States)
			rr.Get("/districts", locationHandler.Districts)
			rr.Get("/local-bodies", locationHandler.LocalBodies)
			rr.Get("/stats", locationHandler.Stats)
			rr.Get("/trending-locations", locationHandler.Trending)
		})

		sp.router = r
	}

	return sp.router
}
