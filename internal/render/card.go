package render

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/asciiref/internal/charset"
)

// Card renders a label/value block describing one record.
func Card(rec charset.Record, highContrast bool) string {
	theme := ThemeFor(highContrast)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))

	char := rec.Char
	if rec.CodePoint == ' ' {
		char = `" "`
	}
	fields := []struct{ label, value string }{
		{"Char:", char},
		{"Name:", charset.Describe(rec.CodePoint)},
		{"Kind:", charset.Kind(rec.CodePoint)},
		{"Decimal:", rec.Decimal},
		{"Hex:", "0x" + rec.Hex},
		{"Octal:", "0o" + rec.Octal},
		{"Binary:", "0b" + rec.Binary},
	}
	labelW := 0
	for _, f := range fields {
		if l := utf8.RuneCountInString(f.label); l > labelW {
			labelW = l
		}
	}

	var b strings.Builder
	b.WriteString(title.Render(rec.Char+" — code point "+rec.Decimal) + "\n")
	for _, f := range fields {
		b.WriteString(renderInline(theme.label(), f.label, f.value, labelW))
	}
	return b.String()
}

// renderInline pads label to labelW and places the value after it.
func renderInline(style lipgloss.Style, label, value string, labelW int) string {
	padded := label
	if n := utf8.RuneCountInString(padded); n < labelW {
		padded += strings.Repeat(" ", labelW-n)
	}
	return style.Render(padded) + " " + value + "\n"
}
