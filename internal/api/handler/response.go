package handler

import (
	"time"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// Response is the envelope every auth endpoint answers with, success or not.
type Response struct {
	IsSuccess  bool               `json:"isSuccess"`
	Message    string             `json:"message"`
	Code       string             `json:"code,omitempty"`
	Violations []domain.Violation `json:"violations,omitempty"`
	Token      string             `json:"token,omitempty"`
	ExpiresAt  *time.Time         `json:"expiresAt,omitempty"`
}

func success(msg string) Response {
	return Response{IsSuccess: true, Message: msg}
}

// Failure renders err as an unsuccessful envelope.
func Failure(msg string, err error) Response {
	resp := Response{Message: msg}
	if ae, ok := domain.AsAuthError(err); ok {
		resp.Code = string(ae.Code)
		resp.Violations = ae.Violations
	}
	return resp
}
