package mail

import (
	"fmt"

	"github.com/pixelvide/mailto-go/pkg/config"
)

// NewMailer creates a new Mailer based on the configuration
func NewMailer(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Mailer {
	case "smtp":
		return NewSMTPMailer(cfg), nil
	case "log", "":
		return NewLogMailer(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported mailer: %s", cfg.Mailer)
	}
}

func defaultFrom(cfg config.MailConfig) string {
	if cfg.FromAddress == "" {
		return ""
	}
	if cfg.FromName != "" {
		return fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return cfg.FromAddress
}
