package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"mealplanner/docs" // swagger docs
	"mealplanner/internal/auth"
	"mealplanner/internal/cache"
	"mealplanner/internal/config"
	"mealplanner/internal/db"
	"mealplanner/internal/handler"
	"mealplanner/internal/logger"
	"mealplanner/internal/repository"
	"mealplanner/internal/router"
	"mealplanner/internal/service"
)

// @title Meal Planner API
// @version 1.0
// @description Meal planner backend with cookie sessions, favorite recipes and weekly meal plans.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name session
// @description HTTP-only session cookie set by /auth/login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(0, false).Fatal("load config", "err", err)
	}
	log := logger.New(cfg.LogLevel, cfg.IsProduction())

	gormDB, err := db.NewMySQL(cfg.MySQL.DSN)
	if err != nil {
		log.Fatal("database init", "err", err)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("failed to drop tables (may not exist)", "err", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", "err", err)
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("redis unavailable, running without cache", "addr", cfg.Redis.Addr, "err", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	mealPlanRepo := repository.NewMealPlanRepository(gormDB)

	// Initialize auth components
	codec := auth.NewTokenCodec(cfg.Session.Secret, cfg.Session.TTL)
	var revocations auth.TokenStoreInterface
	if cfg.Session.RevokeOnLogout {
		revocations = auth.NewTokenStore(cacheClient)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, codec, revocations, cacheClient, cfg.Session.RevokeOnLogout)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	mealPlanService := service.NewMealPlanService(mealPlanRepo)

	// Initialize handlers
	cookie := handler.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    codec.TTL(),
	}
	authHandler := handler.NewAuthHandler(authService, cookie)
	userHandler := handler.NewUserHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	mealPlanHandler := handler.NewMealPlanHandler(mealPlanService)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		log,
		router.Guard(codec, revocations, cfg.Session.CookieName),
		authHandler,
		userHandler,
		favoriteHandler,
		mealPlanHandler,
	)

	log.Info("swagger documentation available", "url", swaggerURL(cfg))

	go func() {
		addr := ":" + cfg.HTTP.Port
		log.Info("server starting", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server start", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", "err", err)
	}
	log.Info("server stopped")
}

// swaggerURL sets the documented host and returns where the UI is served.
func swaggerURL(cfg *config.Config) string {
	host := cfg.HTTP.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.HTTP.Port
	}

	scheme := "http://"
	switch {
	case strings.HasPrefix(host, "https://"):
		scheme = "https://"
		host = strings.TrimPrefix(host, scheme)
	case strings.HasPrefix(host, "http://"):
		host = strings.TrimPrefix(host, scheme)
	}

	docs.SwaggerInfo.Host = host
	return scheme + host + "/swagger/index.html"
}
