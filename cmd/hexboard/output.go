package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hexboard/internal/coord"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	coordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func formatCoords(cs []coord.Coord) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = coordStyle.Render(c.String())
	}
	return strings.Join(parts, " ")
}

func printField(w io.Writer, label string, value string) {
	fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(label), value)
}
