package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richtext/style"
)

// Style controls the editor's rendering.
//
// Text attributes resolve to a style.Font first; Header, Quote and Palette
// decide how that font looks on a terminal.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Header is layered under text whose header level is set.
	Header lipgloss.Style

	// Palette maps named attribute colours to terminal colours. Missing
	// entries leave the colour unset.
	Palette map[style.Color]lipgloss.TerminalColor
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "117"}),
		Palette: map[style.Color]lipgloss.TerminalColor{
			style.ColorDarkGray:  lipgloss.AdaptiveColor{Light: "240", Dark: "245"},
			style.ColorLightGray: lipgloss.AdaptiveColor{Light: "254", Dark: "236"},
		},
	}
}

// fontStyle renders the attributes of a span on top of the base text style.
func (s Style) fontStyle(a style.Attributes) lipgloss.Style {
	f := style.ResolveFont(a)
	ls := s.Text
	if a.Header != style.HeaderNone {
		ls = s.Header.Inherit(ls)
	}
	if f.Bold || f.Weight >= style.WeightSemibold {
		ls = ls.Bold(true)
	}
	if f.Italic {
		ls = ls.Italic(true)
	}
	if f.Underline {
		ls = ls.Underline(true)
	}
	if f.Strikethrough {
		ls = ls.Strikethrough(true)
	}
	if c, ok := s.Palette[f.Foreground]; ok && f.Foreground != style.ColorDefault {
		ls = ls.Foreground(c)
	}
	if c, ok := s.Palette[f.Background]; ok && f.Background != style.ColorDefault {
		ls = ls.Background(c)
	}
	return ls
}
