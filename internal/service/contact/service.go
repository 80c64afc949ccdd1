// Package contact relays public contact-form messages to the site owner.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/liammahoney/site-api/internal/domain"
	"github.com/liammahoney/site-api/pkg/ctxutil"
)

const (
	maxSubjectLen  = 200
	maxBodyLen     = 10000
	defaultSubject = "Contact form"
)

type mailer interface {
	Send(ctx context.Context, subject, body string) error
}

type messageCounter interface {
	IncrementContactMessage(outcome string)
}

// Service validates contact messages and hands them to a mailer.
type Service struct {
	mailer  mailer
	metrics messageCounter
	log     *slog.Logger
}

// NewService creates a new contact service. metrics may be nil.
func NewService(log *slog.Logger, m mailer, metrics messageCounter) *Service {
	return &Service{
		mailer:  m,
		metrics: metrics,
		log:     log.With("service", "contact"),
	}
}

// SendInput is a message as submitted by a visitor.
type SendInput struct {
	Subject string
	Body    string
	Email   string
}

// Validate checks all fields and collects all errors.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	subject := strings.TrimSpace(i.Subject)
	if strings.ContainsAny(subject, "\r\n") {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "must be a single line"})
	}
	if utf8.RuneCountInString(subject) > maxSubjectLen {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 200 characters"})
	}

	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 10000 characters"})
	}

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(i.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Send validates the message and relays it.
func (s *Service) Send(ctx context.Context, input SendInput) error {
	if err := input.Validate(); err != nil {
		s.count("invalid")
		return err
	}

	addr, _ := mail.ParseAddress(strings.TrimSpace(input.Email))
	msg := domain.ContactMessage{
		Subject: strings.TrimSpace(input.Subject),
		Body:    strings.TrimSpace(input.Body),
		Email:   addr.Address,
	}
	if msg.Subject == "" {
		msg.Subject = defaultSubject
	}

	if err := s.mailer.Send(ctx, msg.Subject, msg.MailBody()); err != nil {
		s.count("failed")
		return fmt.Errorf("contact.Send: %w", err)
	}

	s.count("sent")
	s.log.InfoContext(ctx, "contact message relayed",
		slog.String("from", msg.Email),
		slog.String("ip", ctxutil.ClientIPFromCtx(ctx)))
	return nil
}

func (s *Service) count(outcome string) {
	if s.metrics != nil {
		s.metrics.IncrementContactMessage(outcome)
	}
}
