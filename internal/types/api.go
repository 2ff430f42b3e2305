// Package types provides type definitions for structured data used throughout the career-recommender system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoginRequest represents the credential gate request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token issued after a successful login.
type LoginResponse struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RecommendRequest represents a request for ranked careers.
type RecommendRequest struct {
	Skills string `json:"skills" validate:"required"`
	TopK   int    `json:"top_k,omitempty" validate:"omitempty,min=1,max=8"`
	Detail string `json:"detail,omitempty" validate:"omitempty,oneof=deep short"`
}

// RecommendedCareer is a recommendation together with its rendered advice text.
type RecommendedCareer struct {
	Recommendation
	Advice string `json:"advice"`
}

// RecommendResponse is the response body for a recommendation request.
type RecommendResponse struct {
	HistoryID *uuid.UUID          `json:"history_id,omitempty"`
	UserInput string              `json:"user_input"`
	Strategy  string              `json:"strategy"`
	Detail    string              `json:"detail"`
	Results   []RecommendedCareer `json:"results"`
}

// validate is shared by every request type
var validate = validator.New()

// Validate checks the LoginRequest tags. Failures are validator.ValidationErrors.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks the RecommendRequest tags. Failures are validator.ValidationErrors.
func (r *RecommendRequest) Validate() error {
	return validate.Struct(r)
}
