package notification

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"go-hr-analytics/internal/events"
)

var (
	verificationTmpl = template.Must(template.New("verification").Parse(
		`Hi {{.Name}},

Your verification code is {{.Code}}.
It expires at {{.ExpiresAt.Format "15:04 MST, 02 Jan 2006"}}.

If you did not create an account, ignore this email.
`))

	resetTmpl = template.Must(template.New("reset").Parse(
		`Hi {{.Name}},

Use the code {{.Code}} to reset your password.
It expires at {{.ExpiresAt.Format "15:04 MST, 02 Jan 2006"}}.

If you did not ask for a reset, your password is unchanged.
`))
)

// Render turns an account event into the email to send.
func Render(event events.AccountNotificationEvent) (Message, error) {
	var (
		tmpl    *template.Template
		subject string
	)
	switch event.EventType {
	case events.VerificationRequested:
		tmpl, subject = verificationTmpl, "Verify your email address"
	case events.PasswordResetRequested:
		tmpl, subject = resetTmpl, "Reset your password"
	default:
		return Message{}, fmt.Errorf("unknown account event type %q", event.EventType)
	}
	if event.Email == "" {
		return Message{}, fmt.Errorf("account event %q has no recipient", event.EventType)
	}

	data := event
	if data.Name == "" {
		data.Name = "there"
	}
	data.ExpiresAt = data.ExpiresAt.In(time.UTC)

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Message{}, err
	}
	return Message{To: event.Email, Subject: subject, Body: body.String()}, nil
}
