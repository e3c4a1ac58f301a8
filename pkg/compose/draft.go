// Package compose runs a draft through the body serializer and the link
// builder.
package compose

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pixelvide/mailto-go/pkg/content"
	"github.com/pixelvide/mailto-go/pkg/mail"
	"github.com/pixelvide/mailto-go/pkg/mailto"
	"github.com/pixelvide/mailto-go/pkg/trigger"
)

var (
	// ErrEmptyRecipients is returned when a draft document has no "to" entry.
	ErrEmptyRecipients = errors.New("draft has no recipients")
	// ErrInvalidDraft is returned when a draft document cannot be parsed.
	ErrInvalidDraft = errors.New("invalid draft")
)

// AddressList is a list of addresses that reads from JSON as either a single
// string or an array of strings.
type AddressList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *AddressList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = AddressList(mailto.NormalizeRecipients(s))
		return nil
	default:
		var ss []string
		if err := json.Unmarshal(data, &ss); err != nil {
			return err
		}
		*l = AddressList(mailto.NormalizeRecipients(ss))
		return nil
	}
}

// Draft is everything needed to build a mailto link.
type Draft struct {
	To      AddressList
	Cc      AddressList
	Bcc     AddressList
	Subject string
	// Body is the structured message body. When nil, Text is parsed instead.
	Body content.Node
	// Text is free-form body text, used when Body is nil.
	Text      string
	Obfuscate bool
}

type wireDraft struct {
	To        AddressList     `json:"to"`
	Cc        AddressList     `json:"cc,omitempty"`
	Bcc       AddressList     `json:"bcc,omitempty"`
	Subject   string          `json:"subject,omitempty"`
	Body      json.RawMessage `json:"body,omitempty"`
	Text      string          `json:"text,omitempty"`
	Obfuscate bool            `json:"obfuscate,omitempty"`
}

// MarshalJSON implements json.Marshaler. The body is written in the content
// tree format.
func (d Draft) MarshalJSON() ([]byte, error) {
	w := wireDraft{
		To:        d.To,
		Cc:        d.Cc,
		Bcc:       d.Bcc,
		Subject:   d.Subject,
		Text:      d.Text,
		Obfuscate: d.Obfuscate,
	}
	if d.Body != nil {
		body, err := content.Encode(d.Body)
		if err != nil {
			return nil, err
		}
		w.Body = body
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Draft) UnmarshalJSON(data []byte) error {
	var w wireDraft
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*d = Draft{
		To:        w.To,
		Cc:        w.Cc,
		Bcc:       w.Bcc,
		Subject:   w.Subject,
		Text:      w.Text,
		Obfuscate: w.Obfuscate,
	}
	if len(w.Body) > 0 && !bytes.Equal(bytes.TrimSpace(w.Body), []byte("null")) {
		body, err := content.Decode(w.Body)
		if err != nil {
			return err
		}
		d.Body = body
	}
	return nil
}

// DecodeDraft reads a JSON draft document and checks it has recipients.
func DecodeDraft(r io.Reader) (Draft, error) {
	var d Draft
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Draft{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Validate reports ErrEmptyRecipients when the draft has no recipients.
// Address syntax is not checked.
func (d Draft) Validate() error {
	if len(d.To) == 0 {
		return ErrEmptyRecipients
	}
	return nil
}

// BodyNode returns the structured body, parsing Text when Body is unset.
func (d Draft) BodyNode() content.Node {
	if d.Body != nil {
		return d.Body
	}
	return content.ParseText(d.Text)
}

// Headers returns the mailto headers for the draft with the given flattened body.
func (d Draft) Headers(body string) mailto.Headers {
	return mailto.Headers{
		Subject: d.Subject,
		Cc:      d.Cc,
		Bcc:     d.Bcc,
		Body:    body,
	}
}

// Control returns a mailto control for the draft. The given elements, normally
// a single Trigger, precede the body element.
func (d Draft) Control(elems ...trigger.Element) trigger.Control {
	children := make([]trigger.Element, 0, len(elems)+1)
	children = append(children, elems...)
	children = append(children, trigger.Body{Content: d.BodyNode()})
	return trigger.Control{
		To:        mailto.Recipients(d.To),
		Subject:   d.Subject,
		Cc:        d.Cc,
		Bcc:       d.Bcc,
		Obfuscate: d.Obfuscate,
		Children:  children,
	}
}

// Result is a composed draft.
type Result struct {
	Body string `json:"body"`
	Link string `json:"link"`
}

// Message returns the mail message equivalent of the composed draft.
func (r Result) Message(d Draft) *mail.Message {
	return &mail.Message{
		To:      d.To,
		Cc:      d.Cc,
		Bcc:     d.Bcc,
		Subject: d.Subject,
		Body:    r.Body,
	}
}
