package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridSender struct {
	apiKey   string
	fromName string
	fromAddr string
}

func NewSendGridSender(apiKey, fromName, fromAddr string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, fromName: fromName, fromAddr: fromAddr}
}

// htmlBody wraps the plain-text body for the HTML part. Markup in the
// body must not reach the mail as live HTML.
func htmlBody(body string) string {
	return fmt.Sprintf("<pre>%s</pre>", html.EscapeString(body))
}

func (s *SendGridSender) Send(ctx context.Context, to, subject, body string) error {
	if s.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	from := mail.NewEmail(s.fromName, s.fromAddr)
	toEmail := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, toEmail, body, htmlBody(body))

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	log.Printf("mail sent: to=%s subject=%s", to, subject)
	return nil
}
