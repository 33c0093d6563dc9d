// AngelaMos | 2026
// console.go

package mailer

import (
	"context"
	"log/slog"
)

// ConsoleMailer logs the reset link instead of sending anything. It is
// the development default so local signups work without credentials.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) SendPasswordReset(
	ctx context.Context,
	toEmail, toName, resetURL string,
) error {
	slog.Info("password reset email (console mailer)",
		"to", toEmail,
		"name", toName,
		"reset_url", resetURL,
	)
	return nil
}
