package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/cardledger/internal/importer"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderResults prints one line per result and returns ErrFailed if any failed.
func renderResults(w io.Writer, results []importer.Result) error {
	failed := false

	for _, res := range results {
		msg := res.Message
		if res.PaymentCount != nil {
			msg = fmt.Sprintf("%s (%d payments)", msg, *res.PaymentCount)
		}

		name := res.FileName
		if name == "" {
			name = "batch"
		}

		renderLine(w, res.Success, name, msg)

		if !res.Success {
			failed = true
		}
	}

	if failed {
		return ErrFailed
	}

	return nil
}

func renderLine(w io.Writer, ok bool, name, msg string) {
	if ok {
		fmt.Fprintf(w, "%s %s: %s\n", successStyle.Render("✓"), name, msg)
		return
	}

	fmt.Fprintf(w, "%s %s: %s\n", failureStyle.Render("✗"), name, failureStyle.Render(msg))
}
