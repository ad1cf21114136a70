package di

import (
	"context"
	"errors"
	"net/http"
	"time"

	"engagement_platform/configs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const metricsPath = "/metrics"

// NewHealthCheckHandler serves the liveness probe and the metrics gathered by gatherer.
func NewHealthCheckHandler(config configs.HealthCheck, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.Path, healthCheckHandler)
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

// RunHealthCheckServer blocks until ctx is done, then shuts the server down.
func RunHealthCheckServer(ctx context.Context, config configs.HealthCheck, gatherer prometheus.Gatherer, logger *zap.SugaredLogger) {
	server := &http.Server{
		Addr:              config.Addr,
		Handler:           NewHealthCheckHandler(config, gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infow("starting health check server", "addr", config.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
		return
	}

	logger.Info("health check server stopped")
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
