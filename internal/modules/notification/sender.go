package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Mailer sends transactional email through SendGrid. With no API key it
// logs and drops every message, so local setups work without one.
type Mailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewMailer(apiKey, fromEmail, fromName string) *Mailer {
	return &Mailer{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *Mailer) configured() bool { return m.apiKey != "" && m.fromEmail != "" }

func (m *Mailer) send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	if !m.configured() {
		log.Printf("mail to %s dropped (%s): sendgrid not configured", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	subject := "Reset your TravelHub password"
	plain := fmt.Sprintf("Hi %s,\n\nOpen the link below to choose a new password. The link expires in one hour.\n\n%s\n\nIf you did not request this, you can ignore this email.", toName, resetURL)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Open the link below to choose a new password. The link expires in one hour.</p><p><a href="%s">Reset password</a></p><p>If you did not request this, you can ignore this email.</p>`, toName, resetURL)
	return m.send(ctx, toEmail, toName, subject, plain, html)
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, toEmail, toName, reference string, amount float64, currency string) error {
	subject := fmt.Sprintf("Booking %s received", reference)
	plain := fmt.Sprintf("Hi %s,\n\nYour booking %s is in. Total: %.2f %s.\nWe will confirm it as soon as payment clears.", toName, reference, amount, currency)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Your booking <strong>%s</strong> is in. Total: %.2f %s.</p><p>We will confirm it as soon as payment clears.</p>`, toName, reference, amount, currency)
	return m.send(ctx, toEmail, toName, subject, plain, html)
}

func (m *Mailer) SendBookingCancellation(ctx context.Context, toEmail, toName, reference string) error {
	subject := fmt.Sprintf("Booking %s cancelled", reference)
	plain := fmt.Sprintf("Hi %s,\n\nYour booking %s has been cancelled. Any completed payment will be refunded to the original method.", toName, reference)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Your booking <strong>%s</strong> has been cancelled. Any completed payment will be refunded to the original method.</p>`, toName, reference)
	return m.send(ctx, toEmail, toName, subject, plain, html)
}

// SMSSender sends short notices through Twilio, same drop-when-unset
// behavior as the mailer.
type SMSSender struct {
	accountSID string
	authToken  string
	fromNumber string
}

func NewSMSSender(accountSID, authToken, fromNumber string) *SMSSender {
	return &SMSSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
	}
}

func (s *SMSSender) configured() bool {
	return s.accountSID != "" && s.authToken != "" && s.fromNumber != ""
}

func (s *SMSSender) Send(ctx context.Context, toNumber, body string) error {
	if !s.configured() {
		log.Printf("sms to %s dropped: twilio not configured", toNumber)
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.accountSID,
		Password: s.authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
