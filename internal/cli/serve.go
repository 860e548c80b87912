package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cardio-risk-service/internal/config"
	"github.com/iliyamo/cardio-risk-service/internal/handler"
	"github.com/iliyamo/cardio-risk-service/internal/metrics"
	"github.com/iliyamo/cardio-risk-service/internal/middleware"
	"github.com/iliyamo/cardio-risk-service/internal/predictor"
	"github.com/iliyamo/cardio-risk-service/internal/router"
	"github.com/iliyamo/cardio-risk-service/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Load the model once and serve GET /, GET /health and POST /predict until
SIGINT or SIGTERM. A model that fails to load is logged and the server
still starts; /predict then answers 500 until the process is restarted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, err := config.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	p, err := loadModel(ctx, cfg, logger)
	if err != nil {
		logger.Error("model load failed; predictions disabled",
			zap.String("location", cfg.ModelLocation()), zap.Error(err))
	}

	e, _, err := newServer(cfg, logger, p) // p is nil when the load failed
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	// drain in-flight requests, bounded by SHUTDOWN_TIMEOUT
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newServer assembles the echo instance. p may be nil.
func newServer(cfg config.Config, logger *zap.Logger, p predictor.Predictor) (*echo.Echo, *metrics.Metrics, error) {
	bodyLimit, err := cfg.HTTP.BodyLimitBytes()
	if err != nil {
		return nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true // startup is logged through zap instead
	e.HidePort = true

	var (
		m   *metrics.Metrics
		rec service.Recorder
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		m.SetModelLoaded(p != nil)
		rec = m
	}

	e.Use(echomw.Recover()) // turn handler panics into 500s
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	if m != nil {
		e.Use(m.Middleware())
	}
	e.Use(middleware.RequestLogger(logger)) // one line per request
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	// /predict enforces the cap inside the service so it can answer with
	// its own envelopes; every other route gets echo's 413
	e.Use(echomw.BodyLimitWithConfig(echomw.BodyLimitConfig{
		Limit:   cfg.HTTP.BodyLimit,
		Skipper: func(c echo.Context) bool { return c.Path() == router.PredictPath },
	}))

	svc := service.NewRiskService(p, logger, rec).WithBodyLimit(bodyLimit)
	h := handler.NewRiskHandler(svc, cfg.ModelLocation(), logger)
	router.RegisterRoutes(e, h, m)
	return e, m, nil
}
