package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/testcreator/quiz-system/internal/api"
	"github.com/testcreator/quiz-system/internal/core/domain"
	"github.com/testcreator/quiz-system/internal/core/service"
	"github.com/testcreator/quiz-system/internal/infrastructure/config"
	mongodb "github.com/testcreator/quiz-system/internal/infrastructure/db/mongo"
	redisdb "github.com/testcreator/quiz-system/internal/infrastructure/db/redis"
	"github.com/testcreator/quiz-system/internal/infrastructure/queue"
	"github.com/testcreator/quiz-system/pkg/logger"
)

// @title        Quiz System API
// @version      1.0
// @description  Quiz-authoring API with JWT authentication.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet, write straight to stderr and bail.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	// --- Repositories ---
	identityRepo := mongodb.NewIdentityRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	quizRepo := mongodb.NewQuizRepository(db)

	if err := roleRepo.EnsureRoles(ctx, []domain.Role{
		{Name: domain.RoleRegisteredUser, Description: "Default role for registered users"},
		{Name: domain.RoleAdmin, Description: "Administrative access"},
	}); err != nil {
		log.Fatal().Err(err).Msg("role bootstrap")
	}

	// --- Services ---
	tokenService, err := service.NewTokenService(service.TokenConfig{
		Key:      []byte(cfg.JWT.Key),
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		Lifetime: cfg.JWT.Lifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("token service")
	}

	policy := service.PasswordPolicy{
		MinLength:              cfg.Password.MinLength,
		RequireDigit:           cfg.Password.RequireDigit,
		RequireLowercase:       cfg.Password.RequireLowercase,
		RequireUppercase:       cfg.Password.RequireUppercase,
		RequireNonAlphanumeric: cfg.Password.RequireNonAlphanumeric,
	}
	authService := service.NewAuthService(identityRepo, tokenService, policy, log)

	dedup := redisdb.NewViewDedupStore(rdb)
	viewService := service.NewViewService(quizRepo, dedup, log)
	dispatcher := queue.NewDispatcher(0, viewService, log)
	dispatcher.Start(ctx)

	quizService := service.NewQuizService(quizRepo, dispatcher, log)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterDeps{
		AuthService:  authService,
		TokenService: tokenService,
		QuizService:  quizService,
		Mongo:        db,
		Redis:        rdb,
		Logger:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
