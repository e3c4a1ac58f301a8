// Package trigger binds a mailto link to a clickable element.
//
// A Control holds the recipients, headers and children of a mailto control.
// Exactly one child must be a Trigger; the Body children make up the message
// body. Bind produces the Anchor the host renders, either with the link in
// its href (direct mode) or behind a click handler (obfuscated mode).
package trigger

import (
	"context"

	"github.com/pixelvide/mailto-go/pkg/content"
	"github.com/pixelvide/mailto-go/pkg/mailto"
	"github.com/rs/zerolog/log"
)

// ObfuscatedHref is the placeholder href of an obfuscated anchor.
const ObfuscatedHref = "#"

// Element is a child of a Control: a Trigger or a Body.
type Element interface {
	element()
}

// Trigger is the clickable element of a control.
type Trigger struct {
	// Content is the link text. It is HTML-escaped when rendered.
	Content string
	// Attrs are the trigger's own anchor attributes.
	Attrs map[string]string
}

// Body contributes to the message body of a control.
type Body struct {
	Content content.Node
}

func (Trigger) element() {}
func (Body) element()    {}

// Control describes a mailto control and its children.
type Control struct {
	To        mailto.Recipients
	Subject   string
	Cc        []string
	Bcc       []string
	Obfuscate bool
	// Attrs are applied to the rendered anchor and take precedence over the
	// trigger's attributes and the computed href.
	Attrs    map[string]string
	Children []Element
}

// Event is the click event seen by an obfuscated anchor's handler.
type Event interface {
	PreventDefault()
}

// Location is the current page location.
type Location interface {
	Assign(href string)
}

// ClickHandler runs when the anchor is clicked. It runs to completion.
type ClickHandler func(ev Event, loc Location)

// Anchor is the bound trigger, ready to render.
type Anchor struct {
	Href    string
	Attrs   map[string]string
	Content string
	// OnClick is set in obfuscated mode only.
	OnClick ClickHandler

	link string
}

// Bind builds the anchor for a control. When the control has no Trigger
// child it logs an error through the context logger and returns nil, which
// renders as nothing.
func Bind(ctx context.Context, c Control) *Anchor {
	trigger, ok := findTrigger(c.Children)
	if !ok {
		log.Ctx(ctx).Error().
			Strs("to", c.To).
			Msg("trigger is required inside mailto control")
		return nil
	}

	headers := mailto.Headers{
		Subject: c.Subject,
		Cc:      c.Cc,
		Bcc:     c.Bcc,
		Body:    BodyText(c.Children),
	}
	link := mailto.BuildLink(c.To, headers)

	a := &Anchor{
		Content: trigger.Content,
		Attrs:   map[string]string{},
		link:    link,
	}
	for k, v := range trigger.Attrs {
		a.Attrs[k] = v
	}

	if c.Obfuscate {
		a.Href = ObfuscatedHref
		a.OnClick = func(ev Event, loc Location) {
			ev.PreventDefault()
			loc.Assign(link)
		}
	} else {
		a.Href = link
	}
	delete(a.Attrs, "href")

	for k, v := range c.Attrs {
		if k == "href" {
			a.Href = v
			continue
		}
		a.Attrs[k] = v
	}
	return a
}

// BodyText flattens the Body children of a control into the message body.
func BodyText(children []Element) string {
	root := content.Root{}
	for _, el := range children {
		switch b := el.(type) {
		case Body:
			root.Children = append(root.Children, b.Content)
		case *Body:
			if b != nil {
				root.Children = append(root.Children, b.Content)
			}
		}
	}
	return content.Serialize(root)
}

// Obfuscated reports whether the link is hidden behind a click handler.
func (a *Anchor) Obfuscated() bool {
	return a.OnClick != nil
}

// Click runs the anchor's click handler, if any.
func (a *Anchor) Click(ev Event, loc Location) {
	if a.OnClick != nil {
		a.OnClick(ev, loc)
	}
}

func findTrigger(children []Element) (Trigger, bool) {
	for _, el := range children {
		switch t := el.(type) {
		case Trigger:
			return t, true
		case *Trigger:
			if t != nil {
				return *t, true
			}
		}
	}
	return Trigger{}, false
}
