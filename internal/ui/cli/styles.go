package cli

import (
	"comptree/internal/core/app"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))
)

func summaryLine(res app.Result) string {
	parts := []string{
		fmt.Sprintf("%d files", res.Files),
		fmt.Sprintf("%d components", res.Components),
		fmt.Sprintf("%d usages", res.Edges),
		fmt.Sprintf("%d roots", res.Roots),
	}
	line := successStyle.Render("wrote "+res.OutputPath) + " " + statusStyle.Render("("+strings.Join(parts, ", ")+")")
	if res.Roots == 0 && res.Cycles > 0 {
		line += " " + cycleStyle.Render(fmt.Sprintf("%d usage cycles, no root components", res.Cycles))
	}
	return line
}

// printError writes err on one line, message unchanged. Usage errors get a
// pointer to --help.
func printError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintln(w, errorStyle.Render("error:")+" "+err.Error())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(w, statusStyle.Render("run 'comptree --help' for usage"))
	}
}
