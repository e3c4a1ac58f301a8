package compose

import (
	"context"

	"github.com/pixelvide/mailto-go/pkg/content"
	"github.com/pixelvide/mailto-go/pkg/mailto"
	"github.com/pixelvide/mailto-go/pkg/trigger"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pixelvide/mailto-go/pkg/compose"

// Composer turns drafts into bodies, links and anchors.
type Composer struct {
	tracer trace.Tracer
}

// NewComposer creates a Composer using the global tracer provider.
func NewComposer() *Composer {
	return NewComposerWithTracer(otel.Tracer(tracerName))
}

// NewComposerWithTracer creates a Composer that records spans on tracer.
func NewComposerWithTracer(tracer trace.Tracer) *Composer {
	return &Composer{tracer: tracer}
}

// Compose flattens the draft body and builds its mailto link.
func (c *Composer) Compose(ctx context.Context, d Draft) Result {
	ctx, span := c.tracer.Start(ctx, "compose.Compose")
	defer span.End()

	body := c.serialize(ctx, d)

	_, linkSpan := c.tracer.Start(ctx, "compose.build_link")
	link := mailto.BuildLink(mailto.Recipients(d.To), d.Headers(body))
	linkSpan.SetAttributes(
		attribute.Int("mailto.recipients", len(d.To)),
		attribute.Int("mailto.link_length", len(link)),
	)
	linkSpan.End()

	log.Ctx(ctx).Debug().
		Strs("to", d.To).
		Int("body_length", len(body)).
		Int("link_length", len(link)).
		Msg("Composed mailto link")

	return Result{Body: body, Link: link}
}

// Anchor binds the draft to the given control elements. It returns nil and
// logs an error when they hold no Trigger.
func (c *Composer) Anchor(ctx context.Context, d Draft, elems ...trigger.Element) *trigger.Anchor {
	ctx, span := c.tracer.Start(ctx, "compose.Anchor")
	defer span.End()
	span.SetAttributes(attribute.Bool("mailto.obfuscate", d.Obfuscate))

	return trigger.Bind(ctx, d.Control(elems...))
}

func (c *Composer) serialize(ctx context.Context, d Draft) string {
	_, span := c.tracer.Start(ctx, "compose.serialize")
	defer span.End()

	body := content.Serialize(d.BodyNode())
	span.SetAttributes(attribute.Int("mailto.body_length", len(body)))
	return body
}
