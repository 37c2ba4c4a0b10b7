package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/setcard/card"
)

type deckOpts struct {
	dir     string
	formats []string
	width   float64
	height  float64
	scale   float64
	theme   string
	jobs    int
}

func newDeckCmd() *cobra.Command {
	var formatsStr string
	opts := deckOpts{dir: "deck", scale: defaultScale, jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Render the 81 cards of the deck into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runDeck(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	addFrameFlags(cmd, &opts.width, &opts.height)
	cmd.Flags().StringVarP(&opts.dir, "output", "o", opts.dir, "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of cards rendered concurrently")

	return cmd
}

func runDeck(ctx context.Context, stdout io.Writer, opts *deckOpts) error {
	logger := loggerFromContext(ctx)

	if err := validateSize(opts.width, opts.height); err != nil {
		return err
	}
	if err := validateSize(opts.width*opts.scale, opts.height*opts.scale); err != nil {
		return fmt.Errorf("scale %g: %w", opts.scale, err)
	}
	theme, err := loadTheme(ctx, opts.theme)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return err
	}

	prog := newProgress(logger)
	enc := encoder{theme: theme, scale: opts.scale}
	frame := card.Bounds{W: opts.width, H: opts.height}
	deck := card.AllAttributes()

	g, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	for _, attrs := range deck {
		attrs := attrs
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, format := range opts.formats {
				data, err := enc.encode(format, frame, attrs)
				if err != nil {
					return fmt.Errorf("%s/%s: %w", cardName(attrs), format, err)
				}
				path := filepath.Join(opts.dir, cardName(attrs)+"."+format)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				logger.Debugf("Generated %s", path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %d cards", len(deck)))
	printSuccess(stdout, "%d cards x %d format(s)", len(deck), len(opts.formats))
	printFile(stdout, opts.dir)
	return nil
}
