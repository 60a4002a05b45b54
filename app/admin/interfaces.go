package admin

import (
	"context"

	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/models"
)

type Repository interface {
	Get(ctx context.Context, id string) (*models.Admin, error)
	// GetByEmail matches on the normalized email.
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, a *models.Admin) error
}

type Service interface {
	CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*Response, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, payload *security.Payload) error
	// Authenticate verifies a bearer token and returns the admin it was issued to.
	Authenticate(ctx context.Context, token string) (*models.Admin, *security.Payload, error)
}
