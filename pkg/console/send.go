package console

import (
	"fmt"
	"strings"

	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/mail"
	"github.com/pixelvide/mailto-go/pkg/root"
	"github.com/pixelvide/mailto-go/pkg/telemetry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSendCmd() *cobra.Command {
	var (
		opts draftOptions
		from string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Deliver a draft through the configured mailer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := opts.draft(cmd, cfg.Obfuscate)
			if err != nil {
				return err
			}

			mailer, err := mail.NewMailer(cfg.Mail)
			if err != nil {
				return err
			}

			ctx := log.Logger.WithContext(cmd.Context())
			msg := compose.NewComposer().Compose(ctx, d).Message(d)
			msg.From = from

			if err := mailer.Send(ctx, msg); err != nil {
				return fmt.Errorf("failed to send draft: %w", err)
			}
			telemetry.LoggerFromContext(ctx).Debug().
				Strs("to", msg.To).
				Str("mailer", cfg.Mail.Mailer).
				Msg("Draft sent")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sent to %s\n", strings.Join(msg.To, ", "))
			return err
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&from, "from", "", "Sender address (defaults to MAIL_FROM_ADDRESS)")

	return cmd
}

func init() {
	root.GetRoot().AddCommand(newSendCmd())
}
