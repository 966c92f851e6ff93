// Package highlight renders tokenized lines with ANSI styling. It is the
// only place that maps token color classes to concrete terminal styles; the
// engine and tokenizers know nothing about presentation.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glint/internal/token"
)

// Theme maps token color classes to lipgloss styles. Unmapped classes render
// as plain text.
type Theme struct {
	styles map[token.Color]lipgloss.Style
}

// DefaultTheme returns the built-in ANSI-16 theme.
func DefaultTheme() *Theme {
	return &Theme{styles: map[token.Color]lipgloss.Style{
		token.ColorComment:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		token.ColorString:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		token.ColorKeyword:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		token.ColorNumber:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		token.ColorOperator: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		token.ColorType:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		token.ColorPunct:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}}
}

// Render returns text with each token span styled per the theme. Lines with
// no tokens (not yet tokenized) come back unstyled.
func (t *Theme) Render(text string, tokens token.LineTokens) string {
	if tokens.Count() == 0 || text == "" {
		return text
	}
	var sb strings.Builder
	for i := 0; i < tokens.Count(); i++ {
		start := int(tokens.StartOffset(i))
		end := int(tokens.EndOffset(i))
		if start >= len(text) {
			break
		}
		if end > len(text) {
			end = len(text)
		}
		if end <= start {
			continue
		}
		chunk := text[start:end]
		if style, ok := t.styles[tokens.Style(i).Color()]; ok {
			sb.WriteString(style.Render(chunk))
		} else {
			sb.WriteString(chunk)
		}
	}
	return sb.String()
}
