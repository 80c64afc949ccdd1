package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/liammahoney/site-api/internal/adapter/provider/github"
	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

const (
	opInitial = "initial"
	opCheck   = "check"
)

// InitialAuth exchanges a one-time OAuth code for an access token and
// returns the token only if it belongs to the permitted account.
// The first failing step ends the attempt.
func (s *Service) InitialAuth(ctx context.Context, code string) (string, error) {
	token, err := s.github.ExchangeCode(ctx, code)
	if err != nil {
		s.fail(ctx, opInitial, "token exchange failed", err)
		return "", fmt.Errorf("auth.InitialAuth exchange code: %w", err)
	}

	if err := s.verify(ctx, opInitial, token); err != nil {
		return "", fmt.Errorf("auth.InitialAuth: %w", err)
	}

	s.record(opInitial, "ok")
	s.log.InfoContext(ctx, "admin logged in", slog.String("ip", ctxutil.ClientIPFromCtx(ctx)))
	return token, nil
}

// AuthCheck confirms that token belongs to the permitted account.
func (s *Service) AuthCheck(ctx context.Context, token string) error {
	if err := s.verify(ctx, opCheck, token); err != nil {
		return fmt.Errorf("auth.AuthCheck: %w", err)
	}
	s.record(opCheck, "ok")
	return nil
}

// verify runs profile lookup followed by the allowlist check.
func (s *Service) verify(ctx context.Context, op, token string) error {
	profile, err := s.github.FetchProfile(ctx, token)
	if err != nil {
		s.fail(ctx, op, "profile lookup failed", err)
		return fmt.Errorf("profile lookup: %w", err)
	}

	if err := checkAllowed(profile, s.permittedID); err != nil {
		s.fail(ctx, op, "user not allowed", err, slog.String("login", profile.Login))
		return err
	}
	return nil
}

func (s *Service) fail(ctx context.Context, op, msg string, err error, attrs ...any) {
	outcome := "external_error"
	switch {
	case errors.Is(err, domain.ErrNotAllowed):
		outcome = "not_allowed"
	case errors.Is(err, domain.ErrValidation):
		outcome = "invalid_input"
	case github.IsTransportError(err):
		outcome = "unreachable"
	}
	s.record(op, outcome)

	args := append([]any{
		slog.String("op", op),
		slog.String("ip", ctxutil.ClientIPFromCtx(ctx)),
		slog.String("error", err.Error()),
	}, attrs...)
	s.log.WarnContext(ctx, msg, args...)
}
