package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmfalcao/classlog/internal/domain"
)

type openSessionRequest struct {
	ActivityID string `json:"activityId"`
	OwnerEmail string `json:"ownerEmail"`
	Subject    string `json:"subject"`
	Weekday    string `json:"weekday"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

type closeSessionRequest struct {
	OwnerEmail string `json:"ownerEmail"`
	ActivityID string `json:"activityId"`
	EndTime    string `json:"endTime"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type sessionResponse struct {
	SessionKey  string `json:"sessionKey"`
	ActivityID  string `json:"activityId"`
	OwnerEmail  string `json:"ownerEmail"`
	Subject     string `json:"subject"`
	Weekday     string `json:"weekday"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime,omitempty"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Duration    string `json:"duration,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type registerUserRequest struct {
	Email    string                `json:"email"`
	Name     string                `json:"name"`
	Password string                `json:"password"`
	Schedule []scheduleEntryFields `json:"schedule,omitempty"`
}

type scheduleEntryFields struct {
	Name    string `json:"name"`
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type userResponse struct {
	Email    string                `json:"email"`
	Name     string                `json:"name"`
	Schedule []scheduleEntryFields `json:"schedule,omitempty"`
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		SessionKey:  s.Key,
		ActivityID:  s.ActivityID,
		OwnerEmail:  s.OwnerEmail,
		Subject:     s.Subject,
		Weekday:     s.Weekday,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Status:      string(s.Status),
		StatusLabel: s.Status.Label(),
		Duration:    s.Duration,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func toUserResponse(u *domain.UserAccount) userResponse {
	resp := userResponse{Email: u.Email, Name: u.Name}
	for _, e := range u.Schedule {
		resp.Schedule = append(resp.Schedule, scheduleEntryFields{
			Name:    e.Name,
			Weekday: e.Weekday,
			Start:   e.Start,
			End:     e.End,
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromError(err), errorResponse{Error: err.Error()})
}
