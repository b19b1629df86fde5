// Package render draws mazes, solved paths and solver reports as text.
//
// Output is line-oriented and stable: cells are separated by one space and
// every section starts with a blank line and an "=== TITLE ===" header.
// Colour (start green, goal red, walls grey, BFS path yellow, other paths
// cyan) is applied through lipgloss and only when the ColorMode allows it.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/mazepath/core"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/stats"
)

// ANSI palette indices.
var (
	colorGreen  = lipgloss.Color("10")
	colorRed    = lipgloss.Color("9")
	colorGrey   = lipgloss.Color("8")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
)

const tableRule = "+---------------------+------------+------------+"

type styles struct {
	title   lipgloss.Style
	start   lipgloss.Style
	goal    lipgloss.Style
	wall    lipgloss.Style
	bfsPath lipgloss.Style
	dfsPath lipgloss.Style
	yes     lipgloss.Style
	no      lipgloss.Style
}

// Renderer writes reports to one io.Writer.
type Renderer struct {
	w      io.Writer
	sym    Symbols
	plain  bool
	styles styles
}

// New returns a Renderer writing to w.
//
// ColorAuto colours only when w is a terminal (go-isatty) and the terminal
// reports colour support; ColorAlways forces a 256-colour profile.
func New(w io.Writer, opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lr := lipgloss.NewRenderer(w)
	plain := false
	switch o.Color {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		plain = true
	default:
		plain = !isTerminal(w) || lr.ColorProfile() == termenv.Ascii
	}
	if plain {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:     w,
		sym:   o.Symbols,
		plain: plain,
		styles: styles{
			title:   lr.NewStyle().Bold(true),
			start:   lr.NewStyle().Foreground(colorGreen).Bold(true),
			goal:    lr.NewStyle().Foreground(colorRed).Bold(true),
			wall:    lr.NewStyle().Foreground(colorGrey),
			bfsPath: lr.NewStyle().Foreground(colorYellow),
			dfsPath: lr.NewStyle().Foreground(colorCyan),
			yes:     lr.NewStyle().Foreground(colorGreen),
			no:      lr.NewStyle().Foreground(colorRed),
		},
	}
}

// Plain reports whether output is uncoloured.
func (r *Renderer) Plain() bool { return r.plain }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r *Renderer) paint(st lipgloss.Style, s string) string {
	if r.plain {
		return s
	}

	return st.Render(s)
}

func (r *Renderer) flush(b *strings.Builder) error {
	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (r *Renderer) section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(r.paint(r.styles.title, "=== "+title+" ==="))
	b.WriteString("\n")
}

// Loaded reports the file a maze was read from.
func (r *Renderer) Loaded(path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Maze loaded from: %s\n", path)

	return r.flush(&b)
}

// SampleCreated reports where the sample maze was written.
func (r *Renderer) SampleCreated(path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s created successfully at: %s\n", gridgraph.SampleFileName, path)

	return r.flush(&b)
}

// Maze draws g with its start and goal marked.
func (r *Renderer) Maze(g *gridgraph.Grid) error {
	var b strings.Builder
	r.section(&b, fmt.Sprintf("MAZE (%d x %d)", g.Rows(), g.Cols()))
	fmt.Fprintf(&b, "Start: %s\n", g.Start())
	fmt.Fprintf(&b, "Goal : %s\n", g.Goal())
	r.grid(&b, g, nil, r.styles.bfsPath)

	return r.flush(&b)
}

// Path draws o's path over g, or a "No path found" line when o found none.
// BFS paths are yellow and every other algorithm's path is cyan.
func (r *Renderer) Path(g *gridgraph.Grid, o stats.Outcome) error {
	var b strings.Builder
	if !o.Found() {
		fmt.Fprintf(&b, "\nNo path found using %s.\n", o.Algorithm)
		return r.flush(&b)
	}

	onPath := make(map[int]bool, len(o.Path))
	for _, idx := range o.Path {
		onPath[idx] = true
	}
	st := r.styles.dfsPath
	if o.Algorithm == "BFS" {
		st = r.styles.bfsPath
	}

	r.section(&b, o.Algorithm+" PATH")
	r.grid(&b, g, onPath, st)
	fmt.Fprintf(&b, "\nPath length: %d steps\n", o.Steps())

	return r.flush(&b)
}

// grid writes one line per row. Start and goal win over path marks,
// path marks win over open cells.
func (r *Renderer) grid(b *strings.Builder, g *gridgraph.Grid, onPath map[int]bool, pathStyle lipgloss.Style) {
	start, goal := g.Start(), g.Goal()
	cells := make([]string, g.Cols())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			at := gridgraph.Coord{Row: row, Col: col}
			switch {
			case at == start:
				cells[col] = r.paint(r.styles.start, r.sym.Start)
			case at == goal:
				cells[col] = r.paint(r.styles.goal, r.sym.Goal)
			case onPath[g.Index(row, col)]:
				cells[col] = r.paint(pathStyle, r.sym.Path)
			case g.IsWall(row, col):
				cells[col] = r.paint(r.styles.wall, r.sym.Wall)
			default:
				cells[col] = r.sym.Open
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
}

// Memory prints the matrix versus adjacency-list footprint.
func (r *Renderer) Memory(m core.MemoryStats) error {
	var b strings.Builder
	r.section(&b, "MEMORY STATISTICS")
	fmt.Fprintf(&b, "Matrix (rows*cols*int): %d bytes\n", m.MatrixBytes)
	fmt.Fprintf(&b, "Adjacency list:         %d bytes\n", m.AdjacencyBytes)
	fmt.Fprintf(&b, "Memory saved:           %d bytes\n", m.Saved())
	if m.MatrixBytes > 0 {
		fmt.Fprintf(&b, "Efficiency:             %.1f %%\n", m.Efficiency())
	}

	return r.flush(&b)
}

// Comparison prints the side-by-side metrics table and, when both
// algorithms found a path, the verdict.
func (r *Renderer) Comparison(c stats.Comparison) error {
	a, d := c.First, c.Second

	var b strings.Builder
	r.section(&b, "ALGORITHM COMPARISON")
	b.WriteString(tableRule + "\n")
	fmt.Fprintf(&b, "| %-19s | %-10s | %-10s |\n", "Metric", a.Algorithm, d.Algorithm)
	b.WriteString(tableRule + "\n")
	fmt.Fprintf(&b, "| %-19s | %s | %s |\n", "Path Found", r.found(a), r.found(d))
	fmt.Fprintf(&b, "| %-19s | %10d | %10d |\n", "Path Length", a.Steps(), d.Steps())
	fmt.Fprintf(&b, "| %-19s | %10d | %10d |\n", "Nodes Visited", a.Visited, d.Visited)
	fmt.Fprintf(&b, "| %-19s | %10.3f | %10.3f |\n", "Execution Time (ms)", a.Millis(), d.Millis())
	b.WriteString(tableRule + "\n")
	if v := c.Verdict(); v != "" {
		fmt.Fprintf(&b, "\n%s\n", v)
	}

	return r.flush(&b)
}

// found renders Yes/No padded to the 10-wide column; padding stays outside
// the colour codes so the table lines up in both modes.
func (r *Renderer) found(o stats.Outcome) string {
	word, st := "No", r.styles.no
	if o.Found() {
		word, st = "Yes", r.styles.yes
	}

	return r.paint(st, word) + strings.Repeat(" ", 10-len(word))
}
