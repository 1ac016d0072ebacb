package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI palette indices.
const (
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorWhite   = lipgloss.Color("7")
)

// Colorizer renders passwords and passphrases with ANSI colors.
// A disabled Colorizer returns its input unchanged.
type Colorizer struct {
	enabled bool

	upper, lower, digit, symbol lipgloss.Style
	words                       []lipgloss.Style
	separator                   lipgloss.Style
}

// NewColorizer returns a Colorizer. Colors are always emitted when enabled,
// terminal detection is the caller's job (see ShouldEnableColor).
func NewColorizer(enabled bool) *Colorizer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	style := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}

	return &Colorizer{
		enabled: enabled,
		upper:   style(colorBlue),
		lower:   style(colorGreen),
		digit:   style(colorYellow),
		symbol:  style(colorRed),
		words: []lipgloss.Style{
			style(colorCyan),
			style(colorMagenta),
			style(colorYellow),
			style(colorGreen),
		},
		separator: style(colorWhite),
	}
}

// Enabled reports whether the Colorizer emits colors.
func (c *Colorizer) Enabled() bool {
	return c.enabled
}

// Password colors each character by category: uppercase blue, lowercase
// green, digits yellow and everything else red.
func (c *Colorizer) Password(s string) string {
	if !c.enabled {
		return s
	}

	var b strings.Builder
	for _, ch := range s {
		var st lipgloss.Style
		switch {
		case ch >= 'A' && ch <= 'Z':
			st = c.upper
		case ch >= 'a' && ch <= 'z':
			st = c.lower
		case ch >= '0' && ch <= '9':
			st = c.digit
		default:
			st = c.symbol
		}
		b.WriteString(st.Render(string(ch)))
	}
	return b.String()
}

// Passphrase colors words in rotation and keeps the separators.
func (c *Colorizer) Passphrase(s string) string {
	if !c.enabled {
		return s
	}

	words := strings.Split(s, "-")
	for i, w := range words {
		words[i] = c.words[i%len(c.words)].Render(w)
	}
	return strings.Join(words, c.separator.Render("-"))
}

// ShouldEnableColor reports whether output should be colored: colors are on
// unless noColor is set or the destination is not a terminal.
func ShouldEnableColor(noColor bool, isTerminal func() bool) bool {
	if noColor || isTerminal == nil {
		return false
	}
	return isTerminal()
}

// StdoutIsTerminal reports whether standard output is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
