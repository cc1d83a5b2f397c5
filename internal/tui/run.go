package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bilancio-app/bilancio/internal/ledger"
)

// Run starts the interactive dashboard on the given ledger, opening at the
// given month. It blocks until the user quits.
func Run(l *ledger.Ledger, month ledger.Month) error {
	program := tea.NewProgram(newModel(l, month), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
