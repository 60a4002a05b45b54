package admin

import (
	"time"

	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

type LoginRequest struct {
	Email    string `json:"email" example:"owner@example.com"`
	Password string `json:"password" example:"secret1"`
}

func (r *LoginRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Email), "email", "Email is required")
	v.Check(r.Password != "", "password", "Password is required")
	return v.Valid()
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateAdminRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.IsEmail(r.Email), "email", "Must be a valid email address")
	v.Check(validator.MinRunes(r.Password, models.MinPasswordLength), "password", "Password must be at least 6 characters")
	return v.Valid()
}

type Response struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
}

func ToResponse(a *models.Admin) *Response {
	return &Response{ID: a.ID, Email: a.Email, CreatedAt: a.CreatedAt}
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Admin       Response  `json:"admin"`
}
