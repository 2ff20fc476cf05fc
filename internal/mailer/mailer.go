// Package mailer relays contact-form messages to the site owner's inbox.
// Nothing is persisted; a failed send is reported back to the caller so
// the visitor sees it instead of a silent success.
package mailer

import (
	"context"
	"fmt"
)

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string // submitter address, becomes Reply-To
	Subject string
	Phone   string
	Message string
}

// Body composes the transport body: "Subject: {subject}\n\n{message}",
// with name and phone appended when the visitor provided them.
func (m Message) Body() string {
	body := fmt.Sprintf("Subject: %s\n\n%s", m.Subject, m.Message)
	if m.Name != "" {
		body += "\n\nFrom: " + m.Name
	}
	if m.Phone != "" {
		body += "\nPhone: " + m.Phone
	}
	return body
}

// Mailer hands a message to the outbound transport.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}
