package mail

import "context"

// Message is a composed plain-text email
type Message struct {
	From    string
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
}

// Mailer is the interface for delivering composed drafts
type Mailer interface {
	// Send sends the given message
	Send(ctx context.Context, msg *Message) error
}
