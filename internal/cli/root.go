// Package cli implements the setcard command-line interface.
//
// The commands render cards of the Set game into image files:
//   - render: a single card, as SVG, PNG, PDF or a JSON layout description
//   - layout: print the geometry of a card as a table
//   - deck: the 81 cards of the deck into a directory
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "setcard",
		Short:         "setcard draws the cards of the Set game",
		Long:          `setcard lays out and renders the cards of the Set game: one to three identical symbols, with a shape, a shading and a color, stacked on a rounded card.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("setcard %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newDeckCmd())

	return root
}

// Execute runs the setcard CLI until completion or until ctx is canceled.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	root.SetErr(os.Stderr)
	return root.ExecuteContext(ctx)
}
