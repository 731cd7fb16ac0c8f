// Package httpapi is the transport adapter: it decodes JSON requests into
// service operations and maps the error taxonomy onto status codes. No
// business rules live here.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/repository"
	"github.com/dmfalcao/classlog/internal/service"
)

type Server struct {
	sessions service.SessionService
	reports  service.ReportService
	users    service.UserService
	logger   *slog.Logger
	mux      *http.ServeMux
}

func NewServer(sessions service.SessionService, reports service.ReportService, users service.UserService, logger *slog.Logger) *Server {
	s := &Server{
		sessions: sessions,
		reports:  reports,
		users:    users,
		logger:   logger,
	}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("POST /v1/sessions", s.handleOpenSession)
	s.mux.HandleFunc("PUT /v1/sessions/close", s.handleCloseSession)
	s.mux.HandleFunc("GET /v1/sessions/open", s.handleListOpen)
	s.mux.HandleFunc("GET /v1/report", s.handleReport)
	s.mux.HandleFunc("POST /v1/users", s.handleRegisterUser)
	s.mux.HandleFunc("GET /v1/users/{email}", s.handleGetUser)
	s.mux.HandleFunc("POST /v1/auth", s.handleAuthenticate)
	return s
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.requestLogger(s.mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// statusFromError maps the service error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrIdentityNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
