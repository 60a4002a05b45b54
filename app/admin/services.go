package admin

import (
	"context"
	"errors"
	"time"

	"github.com/joefazee/qrmenu/internal/cache"
	"github.com/joefazee/qrmenu/internal/logger"
	"github.com/joefazee/qrmenu/internal/security"
	"github.com/joefazee/qrmenu/internal/validator"
	"github.com/joefazee/qrmenu/models"
)

const (
	MaxFailedLogins   = 5
	FailedLoginWindow = 15 * time.Minute
)

type service struct {
	repo     Repository
	tokens   security.Maker
	attempts cache.Counter
	revoked  cache.Cache[string]
	tokenTTL time.Duration
	logger   logger.Logger
}

func NewService(
	repo Repository,
	tokens security.Maker,
	attempts cache.Counter,
	revoked cache.Cache[string],
	tokenTTL time.Duration,
	l logger.Logger,
) Service {
	return &service{
		repo:     repo,
		tokens:   tokens,
		attempts: attempts,
		revoked:  revoked,
		tokenTTL: tokenTTL,
		logger:   l,
	}
}

func (s *service) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*Response, error) {
	req.Email = models.NormalizeEmail(req.Email)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, models.ErrAdminExists
	case !errors.Is(err, models.ErrRecordNotFound):
		return nil, err
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	a := &models.Admin{Email: req.Email, PasswordHash: hash}
	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "create_admin"})
		return nil, err
	}
	s.logger.Info("admin created", map[string]interface{}{"id": a.ID, "email": a.Email})
	return ToResponse(a), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Email = models.NormalizeEmail(req.Email)
	v := validator.New()
	if !req.Validate(v) {
		return nil, v.Err("Validation failed")
	}

	throttleKey := "login:fail:" + req.Email
	failures, err := s.attempts.Count(ctx, throttleKey)
	if err != nil {
		return nil, err
	}
	if failures >= MaxFailedLogins {
		return nil, models.ErrTooManyAttempts
	}

	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrRecordNotFound) {
		return nil, err
	}
	var ok bool
	if a == nil {
		ok = models.RejectMissingAdmin(req.Password)
	} else {
		ok = a.CheckPassword(req.Password)
	}
	if !ok {
		if _, err := s.attempts.Incr(ctx, throttleKey, FailedLoginWindow); err != nil {
			s.logger.Error(err, map[string]interface{}{"op": "count_failed_login"})
		}
		s.logger.Info("failed admin login", map[string]interface{}{"email": req.Email})
		return nil, models.ErrInvalidCredentials
	}

	if err := s.attempts.Reset(ctx, throttleKey); err != nil {
		s.logger.Error(err, map[string]interface{}{"op": "reset_failed_login"})
	}

	token, payload, err := s.tokens.CreateToken(a.ID, s.tokenTTL, security.TokenScopeAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		ExpiresAt:   payload.ExpiredAt,
		Admin:       *ToResponse(a),
	}, nil
}

func (s *service) Logout(ctx context.Context, payload *security.Payload) error {
	ttl := time.Until(payload.ExpiredAt)
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Set(ctx, payload.ID.String(), payload.Subject, ttl)
}

func (s *service) Authenticate(ctx context.Context, token string) (*models.Admin, *security.Payload, error) {
	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, nil, models.ErrUnauthorized
	}
	if payload.Scope != security.TokenScopeAdmin {
		return nil, nil, models.ErrUnauthorized
	}

	_, err = s.revoked.Get(ctx, payload.ID.String())
	switch {
	case err == nil:
		return nil, nil, models.ErrUnauthorized
	case !errors.Is(err, cache.ErrCacheMiss):
		return nil, nil, err
	}

	a, err := s.repo.Get(ctx, payload.Subject)
	if errors.Is(err, models.ErrRecordNotFound) {
		return nil, nil, models.ErrUnauthorized
	}
	if err != nil {
		return nil, nil, err
	}
	return a, payload, nil
}
