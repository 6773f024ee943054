package report

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardtrick/internal/card"
	"github.com/arcanaland/cardtrick/internal/config"
)

// Printer renders piles and cards as text lines
type Printer struct {
	out   io.Writer
	red   *colorize.Color
	black *colorize.Color
	label *colorize.Color
}

// NewPrinter creates a printer writing to out. Color is enabled according to
// mode; in auto mode only when out is a terminal.
func NewPrinter(out io.Writer, mode string) *Printer {
	p := &Printer{
		out:   out,
		red:   colorize.New(colorize.FgHiRed, colorize.Bold),
		black: colorize.New(colorize.FgHiWhite, colorize.Bold),
		label: colorize.New(colorize.FgCyan),
	}

	enabled := mode == config.ColorAlways || (mode == config.ColorAuto && isTerminal(out))
	for _, c := range []*colorize.Color{p.red, p.black, p.label} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SortByColor returns a copy of cards grouped by color, red first. Order
// within a color is kept.
func SortByColor(cards []card.Card) []card.Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, card.ByColor)
	return sorted
}

// Card renders a single card, colored by its suit
func (p *Printer) Card(c card.Card) string {
	if c.Color() == card.Red {
		return p.red.Sprint(c.String())
	}
	return p.black.Sprint(c.String())
}

// Cards renders cards as "[c1, c2, ...]"
func (p *Printer) Cards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PileLine renders "<label> pile: [<card>, ...]"
func (p *Printer) PileLine(label string, cards []card.Card) string {
	return p.label.Sprintf("%s pile:", label) + " " + p.Cards(cards)
}

// Pile writes a pile line followed by a newline
func (p *Printer) Pile(label string, cards []card.Card) {
	fmt.Fprintln(p.out, p.PileLine(label, cards))
}

// Field writes a "name: value" line
func (p *Printer) Field(name string, value any) {
	fmt.Fprintln(p.out, p.label.Sprintf("%s:", name), value)
}
