package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/renalecon/transplant-planner/internal/config"
	handlers "github.com/renalecon/transplant-planner/internal/handlers/v1alpha1"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service"
	"github.com/renalecon/transplant-planner/internal/store"
	"github.com/renalecon/transplant-planner/pkg/metrics"
	"github.com/renalecon/transplant-planner/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	store    store.Store
	listener net.Listener
}

// New returns a new instance of a transplant-planner API server.
func New(
	cfg *config.Config,
	store store.Store,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		store:    store,
		listener: listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.cfg.Service.CorsOrigins,
			AllowedMethods:   []string{"GET", "PUT", "PATCH", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	sessionSrv := service.NewSessionService(s.store)
	projectionSrv := service.NewProjectionService(s.store, sessionSrv)
	deltas := projection.CostDeltas{
		Dialysis:        s.cfg.Service.Sensitivity.DialysisDelta,
		TransplantYear1: s.cfg.Service.Sensitivity.TransplantYear1Delta,
		TransplantMaint: s.cfg.Service.Sensitivity.TransplantMaintDelta,
	}

	h := handlers.NewServiceHandler(
		sessionSrv,
		projectionSrv,
		service.NewSensitivityService(s.store, sessionSrv, deltas),
		service.NewSummaryService(s.store, sessionSrv, deltas),
		service.NewReportService(s.store, sessionSrv, projectionSrv),
	)
	router.Route("/api/v1alpha1", h.RegisterRoutes)

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}
