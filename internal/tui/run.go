package tui

import (
	"context"
	"fmt"

	"Nivesh/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
)

// Dashboard runs the terminal surface.
type Dashboard struct {
	list    *usecase.StockList
	newView usecase.DetailViewFactory
}

func NewDashboard(list *usecase.StockList, newView usecase.DetailViewFactory) *Dashboard {
	return &Dashboard{list: list, newView: newView}
}

// Run blocks until the user quits or ctx is done.
func (d *Dashboard) Run(ctx context.Context) error {
	view := d.newView()
	defer view.Close()

	m := New(ctx, d.list, view)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
