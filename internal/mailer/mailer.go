// AngelaMos | 2026
// mailer.go

package mailer

import (
	"context"
	"fmt"

	"github.com/bite-platform/bite-backend/internal/config"
)

// Mailer sends transactional email. Only the password reset message
// exists today.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}

// New selects the provider from config. Anything other than sendgrid
// falls back to the console mailer, which just logs the message.
func New(cfg config.EmailConfig) (Mailer, error) {
	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendgridAPIKey == "" {
			return nil, fmt.Errorf("mailer: sendgrid provider requires an api key")
		}
		return NewSendgridMailer(cfg), nil
	default:
		return NewConsoleMailer(), nil
	}
}

func resetText(toName, resetURL string) string {
	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received a request to reset your password. Click the link "+
			"below to choose a new one. The link expires in one hour.\n\n"+
			"%s\n\n"+
			"If you did not request this, you can safely ignore this email.\n",
		toName, resetURL,
	)
}

func resetHTML(toName, resetURL string) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p>`+
			`<p>We received a request to reset your password. Click the link `+
			`below to choose a new one. The link expires in one hour.</p>`+
			`<p><a href="%s">Reset your password</a></p>`+
			`<p>If you did not request this, you can safely ignore this email.</p>`,
		toName, resetURL,
	)
}
