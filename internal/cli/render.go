package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/setcard/card"
	"github.com/benoitkugler/setcard/cardpdf"
	"github.com/benoitkugler/setcard/cardraster"
	"github.com/benoitkugler/setcard/cardsvg"
)

const (
	defaultWidth  = 330 // default frame width
	defaultHeight = 500 // default frame height
	defaultScale  = 2   // default PNG pixel density
	stdoutPath    = "-"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	attrs   attributeFlags
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "pdf", "json"
	width   float64  // frame width
	height  float64  // frame height
	scale   float64  // PNG pixels per unit
	theme   string   // optional TOML theme file
}

// addAttributeFlags registers the card attribute flags on cmd.
func addAttributeFlags(cmd *cobra.Command, f *attributeFlags) {
	cmd.Flags().StringVar(&f.shape, "shape", "circle", "symbol shape: circle, triangle, square")
	cmd.Flags().StringVar(&f.number, "number", "1", "number of symbols: 1, 2, 3")
	cmd.Flags().StringVar(&f.shading, "shading", "filled", "symbol shading: outline, filled, semitransparent")
	cmd.Flags().StringVar(&f.color, "color", "a", "symbol color: a, b, c")
}

func addFrameFlags(cmd *cobra.Command, width, height *float64) {
	cmd.Flags().Float64Var(width, "width", defaultWidth, "frame width")
	cmd.Flags().Float64Var(height, "height", defaultHeight, "frame height")
}

func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single card to SVG, PNG, PDF or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output == stdoutPath && len(opts.formats) > 1 {
				return fmt.Errorf("%w: only one format can be written to stdout", ErrInvalidFormat)
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	addAttributeFlags(cmd, &opts.attrs)
	addFrameFlags(cmd, &opts.width, &opts.height)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")

	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	attrs, err := opts.attrs.parse()
	if err != nil {
		return err
	}
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

	frame := card.Bounds{W: opts.width, H: opts.height}
	logger.Debugf("Rendering %s in %s", cardName(attrs), frame)

	enc := encoder{theme: theme, scale: opts.scale}
	base := basePath(opts.output, cardName(attrs))
	for _, format := range opts.formats {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := enc.encode(format, frame, attrs)
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if opts.output == stdoutPath {
			_, err = stdout.Write(data)
			return err
		}

		path := base + "." + format
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
	}
	return nil
}

// basePath derives the base output path, without extension.
// If output is empty, name is used.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// encoder renders cards with a fixed theme.
type encoder struct {
	theme card.Theme
	scale float64 // PNG only
}

func (e encoder) encode(format string, frame card.Bounds, attrs card.Attributes) ([]byte, error) {
	switch format {
	case formatSVG:
		instrs := e.theme.Compose(frame, attrs)
		return cardsvg.Render(frame.W, frame.H, instrs, cardsvg.WithTitle(cardName(attrs))), nil
	case formatPNG:
		w, h := int(math.Ceil(frame.W*e.scale)), int(math.Ceil(frame.H*e.scale))
		scaled := card.Bounds{X: frame.X * e.scale, Y: frame.Y * e.scale, W: frame.W * e.scale, H: frame.H * e.scale}
		img := cardraster.RenderImage(w, h, e.theme.Compose(scaled, attrs))
		var buf bytes.Buffer
		if err := cardraster.EncodePNG(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatPDF:
		var buf bytes.Buffer
		if err := cardpdf.Write(&buf, frame.W, frame.H, e.theme.Compose(frame, attrs)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatJSON:
		return renderJSON(frame, attrs, e.theme)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}
