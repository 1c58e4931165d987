// Package httpapi exposes the JSON HTTP surface of Passkeeper: registration,
// login, and the authenticated credential CRUD endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/server/config"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// userService is the slice of UserService the handlers need.
type userService interface {
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// credentialService is the slice of CredentialService the handlers need.
type credentialService interface {
	List(ctx context.Context, userID string) ([]*models.Credential, error)
	Create(ctx context.Context, userID, appName, username, secret string) (*models.Credential, error)
	Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error
	Delete(ctx context.Context, id, userID string) error
}

// Server serves the HTTP API.
type Server struct {
	address         string
	logger          logging.Logger
	users           userService
	credentials     credentialService
	sessionSecret   []byte
	sessionValidity time.Duration
}

// NewServer constructs a Server from config and the two services.
func NewServer(cfg *config.Config, l logging.Logger, us userService, cs credentialService) *Server {
	return &Server{
		address:         cfg.EndpointAddr,
		logger:          l.With("module", "http_server"),
		users:           us,
		credentials:     cs,
		sessionSecret:   []byte(cfg.SessionSecret),
		sessionValidity: cfg.SessionValidityDuration,
	}
}

// Router assembles the chi router with middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/ping", s.Ping)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Post("/logout", s.Logout)
	})

	r.Route("/passwords", func(r chi.Router) {
		r.Use(s.authenticate)
		r.Get("/", s.ListCredentials)
		r.Post("/", s.CreateCredential)
		r.Get("/generate", s.GeneratePassword)
		r.Put("/{id}", s.UpdateCredential)
		r.Delete("/{id}", s.DeleteCredential)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Ping reports liveness.
func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
