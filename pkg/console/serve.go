package console

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pixelvide/mailto-go/pkg/compose"
	"github.com/pixelvide/mailto-go/pkg/httpserver"
	"github.com/pixelvide/mailto-go/pkg/root"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mailto HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			// Handle SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			links, closeCache, err := openLinkCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeCache()

			srv := httpserver.New(cfg.HTTP, compose.NewComposer(), links, log.Logger)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				log.Info().Msg("Shutting down HTTP server...")
				if err := srv.Close(); err != nil {
					return err
				}
				<-errCh
				log.Info().Msg("HTTP server stopped.")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to MAILTO_HTTP_ADDR)")

	return cmd
}

func init() {
	root.GetRoot().AddCommand(newServeCmd())
}
