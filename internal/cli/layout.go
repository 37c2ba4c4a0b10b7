package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/setcard/card"
)

type layoutOpts struct {
	attrs         attributeFlags
	width, height float64
}

func newLayoutCmd() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the geometry of a card as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := opts.attrs.parse()
			if err != nil {
				return err
			}
			if err := validateSize(opts.width, opts.height); err != nil {
				return err
			}
			printLayout(cmd.OutOrStdout(), card.Bounds{W: opts.width, H: opts.height}, attrs)
			return nil
		},
	}

	addAttributeFlags(cmd, &opts.attrs)
	addFrameFlags(cmd, &opts.width, &opts.height)
	return cmd
}

// layoutRows returns one row per rectangle of the layout:
// name, x, y, width, height and stroke width (symbols only).
func layoutRows(frame card.Bounds, attrs card.Attributes) [][]string {
	area := card.CardArea(frame)
	symbolArea := card.SymbolArea(area)
	slots := card.SplitIntoSlots(symbolArea)

	row := func(name string, b card.Bounds, stroke string) []string {
		return []string{name, fmt.Sprintf("%.2f", b.X), fmt.Sprintf("%.2f", b.Y),
			fmt.Sprintf("%.2f", b.W), fmt.Sprintf("%.2f", b.H), stroke}
	}

	rows := [][]string{
		row("frame", frame, ""),
		row("card", area, ""),
		row("symbol area", symbolArea, ""),
		row("slot top", slots.Top, ""),
		row("slot middle", slots.Middle, ""),
		row("slot bottom", slots.Bottom, ""),
	}
	for i, slot := range slots.For(attrs.Number) {
		square := card.SymbolBounds(slot)
		path := card.GeneratePath(attrs.Shape, square)
		rows = append(rows, row(fmt.Sprintf("%s %d", attrs.Shape, i+1), square, fmt.Sprintf("%.2f", path.LineWidth)))
	}
	return rows
}

func printLayout(w io.Writer, frame card.Bounds, attrs card.Attributes) {
	headerStyle := styleTitle.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numberStyle := cellStyle.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("", "X", "Y", "Width", "Height", "Stroke").
		Rows(layoutRows(frame, attrs)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	fmt.Fprintln(w, styleTitle.Render(cardName(attrs)))
	fmt.Fprintln(w, t)
}
