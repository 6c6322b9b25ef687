package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/shiftbooks/backoffice/internal/apperrors"
	"github.com/shiftbooks/backoffice/internal/core/domain"
	"github.com/shiftbooks/backoffice/internal/core/ports"
	"github.com/shiftbooks/backoffice/internal/platform/config"
	"github.com/shiftbooks/backoffice/internal/utils"
)

type tokenService struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewTokenService creates the service that mints API tokens and verifies
// Google sign-ins.
func NewTokenService(cfg *config.Config) ports.TokenSvc {
	return &tokenService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ ports.TokenSvc = (*tokenService)(nil)

func (s *tokenService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UID, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) VerifyToken(ctx context.Context, token string) (string, string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("token missing subject: %w", apperrors.ErrUnauthorized)
	}
	return claims.Subject, claims.Email, nil
}

// ExchangeGoogleCode trades a frontend authorization code for Google tokens,
// validates the ID token it carries and returns the verified identity.
func (s *tokenService) ExchangeGoogleCode(ctx context.Context, code string) (string, string, error) {
	if s.cfg.GoogleClientID == "" {
		return "", "", errors.New("google client ID is not configured")
	}

	oauth2Token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		s.LogWarn(ctx, "Google code exchange failed", slog.String("error", err.Error()))
		return "", "", fmt.Errorf("%w: google code exchange failed", apperrors.ErrUnauthorized)
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return "", "", fmt.Errorf("%w: no id_token in google response", apperrors.ErrUpstream)
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return "", "", fmt.Errorf("%w: google ID token validation failed", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", "", fmt.Errorf("%w: google ID token has no email", apperrors.ErrUnauthorized)
	}
	return payload.Subject, email, nil
}
