package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	apiTimeout = 15 * time.Second
	dateLayout = "2006-01-02"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// FormatAmount renders a money amount with two decimals.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatPercent renders a 0-100 rate.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// APICtx returns a context with a standard timeout for API calls.
func APICtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}

func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func boxed(s string) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(s)
}

func errorView(err error) string {
	return lipgloss.NewStyle().Padding(2).Render(
		errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n(Esc to go back)",
	)
}
