package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"catalog/config"
	"catalog/internal/delivery"
	httpmiddleware "catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/router"
	"catalog/internal/delivery/http/validator"
	deliverymiddleware "catalog/internal/delivery/middleware"
	"catalog/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Config, params.Logger, params.ErrorMiddleware, params.RouterParams)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// NewEcho assembles the middleware chain and routes without binding a listener.
func NewEcho(
	cfg *config.Config,
	logger *slog.Logger,
	errorMiddleware *httpmiddleware.ErrorMiddleware,
	routerParams router.RouterParams,
) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	echoServer.Use(middleware.Recover())
	echoServer.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/api/health"),
		},
	}))

	if cfg.Metrics.Enabled {
		metrics := deliverymiddleware.NewMetricsMiddleware(cfg.Env.ServiceName)
		echoServer.Use(metrics.Handle)
		echoServer.GET(cfg.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	echoServer.Use(middleware.CORS())
	echoServer.Use(middleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	router.NewRouter(routerParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))

	s.server.Server.ReadTimeout = s.cfg.HTTP.Timeouts.ReadTimeout
	s.server.Server.ReadHeaderTimeout = s.cfg.HTTP.Timeouts.ReadHeaderTimeout
	s.server.Server.WriteTimeout = s.cfg.HTTP.Timeouts.WriteTimeout
	s.server.Server.IdleTimeout = s.cfg.HTTP.Timeouts.IdleTimeout

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
