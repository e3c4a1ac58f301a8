package console

import (
	"encoding/json"
	"fmt"

	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/root"
	"github.com/spf13/cobra"
)

func newLinkCmd() *cobra.Command {
	var (
		opts   draftOptions
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the mailto link for a draft",
		Example: `  mailto link --to team@example.com -s "Weekly sync" -t "Agenda:
	notes"
  mailto link --draft draft.json --json`,
		Args: cobra.NoArgs,
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

			res := compose.NewComposer().Compose(cmd.Context(), d)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetEscapeHTML(false)
				return enc.Encode(res)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Link)
			return err
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the flattened body and link as JSON")

	return cmd
}

func init() {
	root.GetRoot().AddCommand(newLinkCmd())
}
