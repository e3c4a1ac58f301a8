package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Mailto link builder",
	Long: `Builds mailto: links and anchors from structured message drafts,
serves them over HTTP and delivers drafts through a mailer.`,
	SilenceUsage: true,
}

// SetInfo replaces the name and descriptions shown in help output.
func SetInfo(use, short, long string) {
	rootCmd.Use = use
	rootCmd.Short = short
	rootCmd.Long = long
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func GetRoot() *cobra.Command {
	return rootCmd
}
