package render

import (
	"errors"
	"fmt"
)

// ColorMode selects when ANSI colour is emitted.
type ColorMode string

const (
	// ColorAuto colours only when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colour, e.g. when piping into less -R.
	ColorAlways ColorMode = "always"
	// ColorNever emits plain text.
	ColorNever ColorMode = "never"
)

// ErrColorMode is returned by ParseColorMode for an unknown mode.
var ErrColorMode = errors.New("render: unknown color mode")

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}

	return ColorAuto, fmt.Errorf("%w: %q", ErrColorMode, s)
}

// Symbols are the glyphs drawn for each kind of cell.
type Symbols struct {
	Wall  string
	Open  string
	Start string
	Goal  string
	Path  string
}

// DefaultSymbols returns # . S G *.
func DefaultSymbols() Symbols {
	return Symbols{Wall: "#", Open: ".", Start: "S", Goal: "G", Path: "*"}
}

// Option configures a Renderer.
type Option func(*Options)

// Options holds Renderer settings.
type Options struct {
	Color   ColorMode
	Symbols Symbols
}

// DefaultOptions returns auto colour with DefaultSymbols.
func DefaultOptions() Options {
	return Options{Color: ColorAuto, Symbols: DefaultSymbols()}
}

// WithColor sets the colour mode.
func WithColor(m ColorMode) Option {
	return func(o *Options) { o.Color = m }
}

// WithSymbols replaces the cell glyphs. Empty fields keep their defaults.
func WithSymbols(s Symbols) Option {
	return func(o *Options) {
		def := DefaultSymbols()
		o.Symbols = Symbols{
			Wall:  firstNonEmpty(s.Wall, def.Wall),
			Open:  firstNonEmpty(s.Open, def.Open),
			Start: firstNonEmpty(s.Start, def.Start),
			Goal:  firstNonEmpty(s.Goal, def.Goal),
			Path:  firstNonEmpty(s.Path, def.Path),
		}
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}
