package console

import (
	"fmt"

	"github.com/pixelvide/mailto-go/pkg/root"
	"github.com/pixelvide/mailto-go/pkg/trigger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newAnchorCmd() *cobra.Command {
	var (
		opts         draftOptions
		triggerText  string
		triggerAttrs map[string]string
		attrs        map[string]string
	)

	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Print an HTML anchor for a draft",
		Long: `Renders the draft as an <a> element. Without --trigger nothing is
rendered and an error is logged. With --obfuscate the address is kept out of
the href and revealed on click.`,
		Example: `  mailto anchor --to team@example.com --trigger "Contact us" --attr class=btn`,
		Args:    cobra.NoArgs,
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

			var elems []trigger.Element
			if cmd.Flags().Changed("trigger") {
				elems = append(elems, trigger.Trigger{Content: triggerText, Attrs: triggerAttrs})
			}
			ctrl := d.Control(elems...)
			ctrl.Attrs = attrs

			ctx := log.Logger.WithContext(cmd.Context())
			a := trigger.Bind(ctx, ctrl)
			if a == nil {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.HTML())
			return err
		},
	}

	opts.bind(cmd)
	f := cmd.Flags()
	f.StringVar(&triggerText, "trigger", "", "Link text of the anchor")
	f.StringToStringVar(&triggerAttrs, "trigger-attr", nil, "Trigger attribute as name=value (repeatable)")
	f.StringToStringVar(&attrs, "attr", nil, "Anchor attribute as name=value, overriding trigger attributes (repeatable)")

	return cmd
}

func init() {
	root.GetRoot().AddCommand(newAnchorCmd())
}
