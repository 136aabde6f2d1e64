package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"circuithub-backend/internal/config"
	"circuithub-backend/internal/domains/auth/model"
	"circuithub-backend/pkg/jwt"
)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

// authService authenticates the single configured admin. There is no user
// table; the back office has exactly one principal.
type authService struct {
	admin      config.AdminConfig
	jwtManager *jwt.Manager
	expiry     int
}

func NewAuthService(admin config.AdminConfig, jwtManager *jwt.Manager, expiryHours int) ServiceInterface {
	return &authService{
		admin:      admin,
		jwtManager: jwtManager,
		expiry:     expiryHours,
	}
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email != strings.ToLower(s.admin.Email) || s.admin.PasswordHash == "" {
		// Run a dummy compare anyway so both branches cost the same.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$0000000000000000000000000000000000000000000000000000"), []byte(req.Password))
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(email, email, "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.LoginResponse{
		Token:     token,
		Email:     email,
		Role:      "admin",
		ExpiresIn: s.expiry * 3600,
	}, nil
}
