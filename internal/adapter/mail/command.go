// Package mail delivers contact-form messages through a local mail command.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/liammahoney/site-api/internal/config"
)

const maxStderrBytes = 4 << 10

// CommandMailer runs "<command> -s <subject> <recipient>" with the message
// body on stdin. Arguments are passed directly to the process; no shell
// is involved, so message content is never interpreted.
type CommandMailer struct {
	name      string
	args      []string
	recipient string
	timeout   time.Duration
	log       *slog.Logger
}

// NewCommandMailer creates a mailer from config.MailConfig. The command may
// carry leading arguments, e.g. "mail -r site@liammahoney.dev".
func NewCommandMailer(cfg config.MailConfig, logger *slog.Logger) *CommandMailer {
	fields := strings.Fields(cfg.Command)
	m := &CommandMailer{
		recipient: cfg.Recipient,
		timeout:   cfg.Timeout,
		log:       logger.With("adapter", "mail"),
	}
	if len(fields) > 0 {
		m.name = fields[0]
		m.args = fields[1:]
	}
	return m
}

// Send delivers one message. It fails if the command cannot be started,
// exits non-zero, or exceeds the configured timeout. Cancelling ctx does not
// stop a relay that has started; only the timeout bounds it.
func (m *CommandMailer) Send(ctx context.Context, subject, body string) error {
	if m.name == "" {
		return fmt.Errorf("mail: no command configured")
	}
	if strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("mail: subject must be a single line")
	}

	ctx = context.WithoutCancel(ctx)
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	args := append(append([]string(nil), m.args...), "-s", subject, m.recipient)
	cmd := exec.CommandContext(ctx, m.name, args...)
	cmd.Stdin = strings.NewReader(body)

	var stderr bytes.Buffer
	cmd.Stderr = &limitedWriter{buf: &stderr, max: maxStderrBytes}

	start := time.Now()
	if err := cmd.Run(); err != nil {
		m.log.ErrorContext(ctx, "mail command failed",
			slog.String("command", m.name),
			slog.String("error", err.Error()),
			slog.String("stderr", strings.TrimSpace(stderr.String())))
		if ctx.Err() != nil {
			return fmt.Errorf("mail: %s: %w", m.name, ctx.Err())
		}
		return fmt.Errorf("mail: %s: %w", m.name, err)
	}

	m.log.DebugContext(ctx, "mail sent",
		slog.String("recipient", m.recipient),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// Ping reports whether the mail command can be found.
func (m *CommandMailer) Ping(_ context.Context) error {
	if m.name == "" {
		return fmt.Errorf("mail: no command configured")
	}
	if _, err := exec.LookPath(m.name); err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	return nil
}

// limitedWriter keeps at most max bytes and silently drops the rest.
type limitedWriter struct {
	buf *bytes.Buffer
	max int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if room := w.max - w.buf.Len(); room > 0 {
		if len(p) > room {
			w.buf.Write(p[:room])
		} else {
			w.buf.Write(p)
		}
	}
	return len(p), nil
}
