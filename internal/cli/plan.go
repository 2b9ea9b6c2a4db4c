package cli

import (
	"fmt"
	"os"
	"strings"

	"sectiongrid/internal/geometry"
	"sectiongrid/internal/input"
	"sectiongrid/internal/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
	previewMaxCols = 40
	previewMaxRows = 12
)

var (
	accent     = lipgloss.Color("#22c55e")
	labelStyle = lipgloss.NewStyle().Foreground(accent).Bold(true).Width(10)
	noteStyle  = lipgloss.NewStyle().Faint(true)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	numbers    = message.NewPrinter(language.English)
)

// Plan prints the geometry and render strategy for a count without opening
// the full-screen UI.
func Plan() *cobra.Command {
	var (
		raw           string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the grid shape and render plan for a count",
		Long:  `Show how a count would be laid out on a viewport and whether it is rendered in batches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				width, height = terminalSize()
			}
			p := makePlan(raw, geometry.Viewport{Width: width, Height: height})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), p.render())
			return err
		},
	}
	cmd.Flags().StringVarP(&raw, "count", "n", "1", "requested number of cells, clamped to what fits")
	cmd.Flags().IntVar(&width, "width", 0, "viewport width, defaults to the terminal width")
	cmd.Flags().IntVar(&height, "height", 0, "viewport height, defaults to the terminal height")
	return cmd
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

type plan struct {
	Viewport  geometry.Viewport
	Requested string
	Max       int
	Count     int
	Shape     geometry.Shape
	Batched   bool
	Frames    int
}

func makePlan(raw string, v geometry.Viewport) plan {
	maxAllowed := geometry.MaxAllowed(v)
	count := input.Clamp(raw, maxAllowed)
	p := plan{
		Viewport:  v,
		Requested: raw,
		Max:       maxAllowed,
		Count:     count,
		Shape:     geometry.ComputeShape(count, v.AspectRatio()),
		Batched:   geometry.ShouldBatch(count),
		Frames:    1,
	}
	if p.Batched {
		p.Frames = (count + render.BatchSize - 1) / render.BatchSize
	}
	return p
}

func (p plan) render() string {
	row := func(label, value, note string) string {
		s := labelStyle.Render(label) + value
		if note != "" {
			s += "  " + noteStyle.Render(note)
		}
		return s
	}
	strategy := "single pass"
	if p.Batched {
		strategy = numbers.Sprintf("%d frames of %d", p.Frames, render.BatchSize)
	}
	rows := []string{
		row("viewport", fmt.Sprintf("%d×%d", p.Viewport.Width, p.Viewport.Height), fmt.Sprintf("aspect %.2f", p.Viewport.AspectRatio())),
		row("max", numbers.Sprintf("%d", p.Max), ""),
		row("count", numbers.Sprintf("%d", p.Count), fmt.Sprintf("requested %q", p.Requested)),
		row("grid", fmt.Sprintf("%d×%d", p.Shape.Columns, p.Shape.Rows), numbers.Sprintf("capacity %d", p.Shape.Capacity())),
		row("render", strategy, ""),
	}
	if preview := p.preview(); preview != "" {
		rows = append(rows, "", preview)
	}
	return frameStyle.Render(strings.Join(rows, "\n"))
}

// preview sketches small grids, one glyph per slot.
func (p plan) preview() string {
	if p.Shape.Columns > previewMaxCols || p.Shape.Rows > previewMaxRows {
		return ""
	}
	var b strings.Builder
	for r := 0; r < p.Shape.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < p.Shape.Columns; c++ {
			if r*p.Shape.Columns+c < p.Count {
				b.WriteString("■ ")
			} else {
				b.WriteString("· ")
			}
		}
	}
	return lipgloss.NewStyle().Foreground(accent).Render(strings.TrimRight(b.String(), " "))
}
