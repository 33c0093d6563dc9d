// AngelaMos | 2026
// sendgrid.go

package mailer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/bite-platform/bite-backend/internal/config"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type SendgridMailer struct {
	apiKey string
	from   *sgmail.Email
}

func NewSendgridMailer(cfg config.EmailConfig) *SendgridMailer {
	return &SendgridMailer{
		apiKey: cfg.SendgridAPIKey,
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (m *SendgridMailer) SendPasswordReset(
	ctx context.Context,
	toEmail, toName, resetURL string,
) error {
	personalization := sgmail.NewPersonalization()
	personalization.Subject = "Reset your password"
	personalization.AddTos(sgmail.NewEmail(toName, toEmail))

	message := sgmail.NewV3Mail()
	message.SetFrom(m.from)
	message.AddPersonalizations(personalization)
	message.AddContent(
		sgmail.NewContent("text/plain", resetText(toName, resetURL)),
		sgmail.NewContent("text/html", resetHTML(toName, resetURL)),
	)

	req := sendgrid.GetRequest(m.apiKey, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(message)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}

	return nil
}
