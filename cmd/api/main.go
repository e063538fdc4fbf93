package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/yogaflow/studio-api/internal/api"
	"github.com/yogaflow/studio-api/internal/api/handler"
	"github.com/yogaflow/studio-api/internal/auth"
	"github.com/yogaflow/studio-api/internal/core/service"
	"github.com/yogaflow/studio-api/internal/infrastructure/config"
	"github.com/yogaflow/studio-api/internal/infrastructure/db/mongo"
	"github.com/yogaflow/studio-api/internal/infrastructure/db/redis"
	"github.com/yogaflow/studio-api/internal/infrastructure/queue"
	"github.com/yogaflow/studio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	userRepo := mongo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}
	teacherRepo := mongo.NewTeacherRepository(db)
	sessionRepo := mongo.NewSessionRepository(db)
	auditRepo := mongo.NewAuditRepository(db)

	// --- Redis ---
	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	throttle := redis.NewLoginThrottle(redisClient, 0, 0)

	// --- Audit trail ---
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	codec := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec, throttle, dispatcher, log)
	sessionService := service.NewSessionService(sessionRepo, userRepo, log)
	teacherService := service.NewTeacherService(teacherRepo)
	userService := service.NewUserService(userRepo, log)
	loader := service.NewIdentityLoader(userRepo)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		AuthService:    handler.NewAuthHandler(authService),
		SessionHandler: handler.NewSessionHandler(sessionService),
		TeacherHandler: handler.NewTeacherHandler(teacherService),
		UserHandler:    handler.NewUserHandler(userService),
		Readiness:      handler.NewReadinessHandler(db, redisClient),
		Codec:          codec,
		Loader:         loader,
		Logger:         log,
	})

	// Prometheus and Swagger are wired here rather than in NewRouter so the
	// default registry is touched exactly once per process.
	e.Use(echoprometheus.NewMiddleware("studio"))
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
