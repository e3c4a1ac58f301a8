package mail

import (
	"context"

	"github.com/pixelvide/mailto-go/pkg/config"
	"github.com/rs/zerolog/log"
)

// LogMailer implements Mailer by logging messages
type LogMailer struct {
	cfg config.MailConfig
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(cfg config.MailConfig) *LogMailer {
	return &LogMailer{cfg: cfg}
}

// Send logs the message details
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	if msg.From == "" {
		msg.From = defaultFrom(m.cfg)
	}

	logger := log.Ctx(ctx).With().
		Str("mailer", "log").
		Str("from", msg.From).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Logger()

	if len(msg.Cc) > 0 {
		logger = logger.With().Strs("cc", msg.Cc).Logger()
	}
	if len(msg.Bcc) > 0 {
		logger = logger.With().Strs("bcc", msg.Bcc).Logger()
	}

	logger.Info().Msg("Sending email")
	logger.Info().Msgf("Body:\n%s", msg.Body)

	return nil
}
