package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/tkstudio/site-backend/internal/config"
	"github.com/tkstudio/site-backend/internal/model"
	gomail "github.com/wneessen/go-mail"
)

// Mailer dispatches inquiry notifications. Implementations must be safe for
// concurrent use; callers treat failures as log-and-forget.
type Mailer interface {
	SendInquiryNotification(ctx context.Context, inq *model.Inquiry) error
}

// notificationTmpl renders the admin notification for a new inquiry.
var notificationTmpl = template.Must(template.New("inquiry").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h2 style="color: #C5A059;">New Inquiry Received</h2>
	<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
	<p><strong>Email:</strong> {{.Email}}</p>
	<p><strong>Phone:</strong> {{.Phone}}</p>
	<p><strong>Country:</strong> {{.Country}}</p>
	<p><strong>Event Details:</strong> {{.EventDetails}}</p>
	<p><strong>Venue Address:</strong> {{.VenueAddress}}</p>
	<p><strong>Number of Guests:</strong> {{.NumberOfGuests}}</p>
	<p><strong>Date:</strong> {{.Date}}</p>
	<p><strong>Time:</strong> {{.Time}}</p>
	<p><strong>Additional Requirements:</strong> {{.AdditionalRequirements}}</p>
	<p><strong>How Did You Hear About Us:</strong> {{.HowDidYouHear}}</p>
</body>
</html>`))

// SMTP sends notifications through a configured SMTP relay.
type SMTP struct {
	client *gomail.Client
	sender string
	admin  string
}

// NewSMTP creates an SMTP mailer from configuration. Returns nil (mail
// disabled) when no SMTP host is configured.
func NewSMTP(cfg *config.Config) (*SMTP, error) {
	if cfg.SMTPHost == "" {
		return nil, nil
	}

	opts := []gomail.Option{gomail.WithPort(cfg.SMTPPort)}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTP{
		client: client,
		sender: cfg.SenderEmail,
		admin:  cfg.AdminEmail,
	}, nil
}

// SendInquiryNotification renders and sends the inquiry email to the admin
// address.
func (m *SMTP) SendInquiryNotification(ctx context.Context, inq *model.Inquiry) error {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, inq); err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.admin); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Inquiry from %s %s", inq.FirstName, inq.LastName))
	msg.SetBodyString(gomail.TypeTextHTML, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
