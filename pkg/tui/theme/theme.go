package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the multi-select UI.
type Theme struct {
	Title  lipgloss.Style
	Search SearchTheme
	List   ListTheme
	Footer FooterTheme
}

// SearchTheme styles the filter input row.
type SearchTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
}

// ListTheme styles option rows and the state messages shown in their place.
type ListTheme struct {
	Checked   lipgloss.Style
	Unchecked lipgloss.Style
	Cursor    lipgloss.Style
	Separator lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
}

// FooterTheme groups styles used by the bottom help and apply bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Apply  lipgloss.Style
}

type palette struct {
	accent     string
	foreground string
	background string
	errorColor string
}

var (
	darkPalette = palette{
		accent:     "#FF5FD7",
		foreground: "#E4E4E4",
		background: "#1C1C1C",
		errorColor: "#FF5F5F",
	}
	lightPalette = palette{
		accent:     "#AF0087",
		foreground: "#262626",
		background: "#FFFFFF",
		errorColor: "#D70000",
	}
)

// Default returns the built-in dark theme.
func Default() Theme {
	return New(true)
}

// Detect picks the dark or light theme from the terminal background.
func Detect() Theme {
	return New(termenv.HasDarkBackground())
}

// New returns the theme for a dark or light background.
func New(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	accent := lipgloss.Color(p.accent)
	muted := lipgloss.Color(Blend(p.foreground, p.background, 0.45))
	faint := lipgloss.Color(Blend(p.foreground, p.background, 0.7))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(faint).
		Padding(0, 1)

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Search: SearchTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(accent),
		},
		List: ListTheme{
			Checked:   lipgloss.NewStyle().Foreground(accent),
			Unchecked: lipgloss.NewStyle().Foreground(lipgloss.Color(p.foreground)),
			Cursor:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Separator: lipgloss.NewStyle().Foreground(faint),
			Message:   lipgloss.NewStyle().Italic(true).Foreground(muted),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.errorColor)),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Italic(true).Foreground(muted),
			Apply: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(p.background)).
				Background(accent).
				Padding(0, 1),
		},
	}
}

// Blend mixes two hex colors in Lab space; t=0 yields a, t=1 yields b. Invalid
// input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
