package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	apicontract "github.com/tuanvumaihuynh/product-catalog/api-contract"
	"github.com/tuanvumaihuynh/product-catalog/internal/apperr"
	"github.com/tuanvumaihuynh/product-catalog/internal/config"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/apierr"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/metric"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/middleware"
	"github.com/tuanvumaihuynh/product-catalog/internal/http/swagger"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

const readyTimeout = 2 * time.Second

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metric.Metrics

	productSvc    service.ProductService
	healthChecker db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
	healthChecker db.HealthChecker,
) *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Service{
		cfg:           cfg,
		logger:        log.With(slog.String("service", "http")),
		registry:      registry,
		metrics:       metric.New(registry),
		productSvc:    productSvc,
		healthChecker: healthChecker,
	}
}

// Run starts listening on the configured port. Listen errors are returned
// immediately; the server itself runs in the background until cleanup.
func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}

	return s.RunWithServer(ctx, handler)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "http server stopped unexpectedly", slog.Any("error", err))
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

// Handler builds the router with every route and middleware of the service.
func (s *Service) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.registerProbes(r)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
		Registry: s.registry,
	}))

	if err := s.RegisterHandlers(r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.CORS),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) error {
	var apiMiddlewares []func(http.Handler) http.Handler
	if s.cfg.ValidateRequests {
		validate, err := middleware.OpenAPIValidator(apicontract.GetSpecBytes(), s.handleRequestError)
		if err != nil {
			return fmt.Errorf("create openapi validator: %w", err)
		}
		apiMiddlewares = append(apiMiddlewares, validate)
	}

	strictHandlers := gen.NewStrictHandlerWithOptions(
		s.newHandler(),
		[]gen.StrictMiddlewareFunc{},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)

	r.Group(func(r chi.Router) {
		r.Use(apiMiddlewares...)

		gen.HandlerWithOptions(strictHandlers, gen.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: s.handleResponseError,
			Middlewares:      []gen.MiddlewareFunc{},
		})
	})

	return nil
}

func (s *Service) registerProbes(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		//nolint:errcheck
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if ok, err := s.healthChecker.IsHealthy(ctx); !ok || err != nil {
			s.logger.WarnContext(ctx, "readiness check failed", slog.Any("error", err))
			s.writeError(w, r, apierr.New(apperr.DatabaseUnavailableErr.WrapParent(err)))
			return
		}

		//nolint:errcheck
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(apperr.ValidationErr.WrapParent(err))

	s.logger.DebugContext(r.Context(), "http request rejected", slog.Any("error", err))
	s.writeError(w, r, res)
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	s.writeError(w, r, res)
}

func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, apierr.ErrorResponse{
		ErrorResponse: gen.ErrorResponse{Code: "routeNotFound", Message: "route not found"},
		StatusCode:    http.StatusNotFound,
	})
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, apierr.ErrorResponse{
		ErrorResponse: gen.ErrorResponse{Code: "methodNotAllowed", Message: "method not allowed"},
		StatusCode:    http.StatusMethodNotAllowed,
	})
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, res apierr.ErrorResponse) {
	if err := writeJSON(w, res.StatusCode, res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

var _ gen.StrictServerInterface = (*handler)(nil)

type handler struct {
	*productHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler: newProductHandler(s.productSvc),
	}
}
