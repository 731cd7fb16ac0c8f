package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/repository"
	"github.com/dmfalcao/classlog/internal/service"
)

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	sess, err := s.sessions.Open(r.Context(), service.OpenSessionInput{
		ActivityID: req.ActivityID,
		OwnerEmail: req.OwnerEmail,
		Subject:    req.Subject,
		Weekday:    req.Weekday,
		Date:       req.Date,
		StartTime:  req.StartTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sessionKey": sess.Key})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	var req closeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	sess, err := s.sessions.Close(r.Context(), service.CloseSessionInput{
		OwnerEmail: req.OwnerEmail,
		ActivityID: req.ActivityID,
		EndTime:    req.EndTime,
		Date:       req.Date,
		Status:     req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

func (s *Server) handleListOpen(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("ownerEmail")
	sessions, err := s.sessions.ListOpen(r.Context(), owner)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		resp = append(resp, toSessionResponse(sess))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	wb, err := s.reports.BuildReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", wb.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", wb.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(wb.Bytes)
}

func (s *Server) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	u := &domain.UserAccount{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
	for _, e := range req.Schedule {
		u.Schedule = append(u.Schedule, domain.ScheduleEntry{
			Name:    e.Name,
			Weekday: e.Weekday,
			Start:   e.Start,
			End:     e.End,
		})
	}

	if err := s.users.Register(r.Context(), u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	u, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// Bad credentials and unknown accounts are indistinguishable to
		// the caller; anything else is a store failure, not a 401.
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, domain.ErrIdentityNotFound) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
