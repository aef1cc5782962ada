package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"facility-console/internal/repositories"
	"facility-console/internal/routes"
	"facility-console/pkg/clock"
	"facility-console/pkg/config"
	"facility-console/pkg/customvalidator"
	apperrors "facility-console/pkg/errors"
	"facility-console/pkg/eventbus"
	applogger "facility-console/pkg/logger"
	"facility-console/pkg/metrics"
	"facility-console/pkg/service"
	"facility-console/pkg/telegram"
	"facility-console/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	e := newEcho(cfg, logger)

	var redisClient *redis.Client
	if cfg.Store.Driver == "redis" || cfg.Cache.Enabled {
		client, err := newRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		redisClient = client
	}

	st, err := openStore(ctx, cfg, redisClient, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	files, err := openFileStorage(ctx, cfg.FileStorage, logger)
	if err != nil {
		return err
	}

	m := metrics.New()
	bus := eventbus.New(logger.Named("eventbus"))
	defer bus.Wait()

	deps := routes.Deps{
		Repos:       repositories.NewRepositories(ctx, st, logger, m),
		Clock:       clock.NewFixedOffset(cfg.Clock.OffsetHours),
		CacheTTL:    cfg.Cache.TTL,
		FileStorage: files,
		Bus:         bus,
		Metrics:     m,
		Logger:      logger,
	}
	if cfg.Cache.Enabled {
		deps.Cache = repositories.NewRedisCacheRepository(redisClient)
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		deps.Notifier = telegram.NewService(cfg.Telegram.BotToken)
		deps.NotifyChat = cfg.Telegram.ChatID
	}
	if cfg.Auth.JWTSecret != "" {
		deps.JWT = service.NewJWTService(cfg.Auth.JWTSecret)
	}
	routes.InitRouter(e, deps)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEcho(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "서버 내부 오류가 발생했습니다", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)
	return e
}
