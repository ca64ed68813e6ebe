package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/kasuboski/vfp/pkg/cache"
	"github.com/kasuboski/vfp/pkg/parser"
	"github.com/kasuboski/vfp/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

var (
	errNoStorage   = errors.New("parse history storage is not configured")
	errRateLimited = errors.New("too many requests")
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server houses the dependencies of the parse api such as loggers, caches and storage
type Server struct {
	baseLogger *zap.SugaredLogger
	table      *parser.Table
	parses     *cache.Cache[string, parser.Metadata]
	store      storage.ParseResultStorage
	limiter    *clientLimiter
}

type Option func(*Server)

// WithStorage records every parse in store and enables the history endpoints
func WithStorage(store storage.ParseResultStorage) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithCacheSize bounds the number of memoised parse results. Zero means unbounded.
func WithCacheSize(max int) Option {
	return func(s *Server) {
		s.parses = cache.NewBounded[string, parser.Metadata](max)
	}
}

// New creates a new parse server using the default pattern table
func New(logger *zap.SugaredLogger, opts ...Option) Server {
	s := Server{
		baseLogger: logger,
		table:      parser.DefaultTable(),
		parses:     cache.New[string, parser.Metadata](),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router returns the api routes with logging middleware and cors applied
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()
	api.Use(s.RateLimitMiddleware())

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/parse", s.ParseOne()).Methods(http.MethodGet)
	v1.HandleFunc("/parse", s.ParseBatch()).Methods(http.MethodPost)

	v1.HandleFunc("/history", s.ListHistory()).Methods(http.MethodGet)
	v1.HandleFunc("/history/{id:[0-9]+}", s.GetHistory()).Methods(http.MethodGet)
	v1.HandleFunc("/history/{id:[0-9]+}", s.DeleteHistory()).Methods(http.MethodDelete)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done or an interrupt is received
func (s Server) Serve(ctx context.Context, port int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	s.baseLogger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
