package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/report"
)

type exportState int

const (
	exportStateTimeframe exportState = iota
	exportStatePath
	exportStateExporting
	exportStateResult
)

type ExportModel struct {
	client *client.Client

	state           exportState
	err             error
	timeframePicker TimeframePicker
	period          TimeframeSelectedMsg

	form    *huh.Form
	spinner spinner.Model
	summary string
}

func NewExportModel(c *client.Client) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return ExportModel{
		client:          c,
		state:           exportStateTimeframe,
		timeframePicker: NewTimeframePicker(),
		spinner:         s,
	}
}

func (m ExportModel) Title() string { return "Export Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tfMsg, ok := msg.(TimeframeSelectedMsg); ok {
		m.period = tfMsg
		m.form = buildPathForm(tfMsg.End)
		m.state = exportStatePath

		return m, m.form.Init()
	}

	switch m.state {
	case exportStateTimeframe:
		return m.updateTimeframe(msg)
	case exportStatePath:
		return m.updatePath(msg)
	case exportStateExporting:
		return m.updateExporting(msg)
	case exportStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ExportModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m ExportModel) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = exportStateTimeframe
			m.timeframePicker.Reset()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = exportStateExporting
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(m.period.End, strings.TrimSpace(m.form.GetString("path"))))
}

func (m ExportModel) updateExporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(exportResultMsg); ok {
		m.state = exportStateResult
		m.err = result.err
		m.summary = result.body

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m ExportModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

// DefaultExportPath names the workbook after the month it reports on.
func DefaultExportPath(asOf time.Time) string {
	return filepath.Join(".", "exports", "estate-report-"+asOf.Format("2006-01")+".xlsx")
}

func buildPathForm(asOf time.Time) *huh.Form {
	path := DefaultExportPath(asOf)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("Output File").
				Description("Directory will be created if it doesn't exist").
				Value(&path).
				Validate(func(s string) error {
					if !strings.HasSuffix(strings.ToLower(strings.TrimSpace(s)), ".xlsx") {
						return fmt.Errorf("file must end in .xlsx")
					}
					return nil
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())

	case exportStatePath:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Fetching data and writing workbook...", m.spinner.View()),
		)

	case exportStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ExportModel) viewResult() string {
	if m.err != nil {
		return errorView(m.err)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Export Complete!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			"Summary:",
			"",
			m.summary,
		),
	)
}

type exportResultMsg struct {
	body string
	err  error
}

const exportTimeout = 2 * time.Minute

func (m ExportModel) runExportCmd(asOf time.Time, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		d, err := m.client.Dataset(ctx)
		if err != nil {
			return exportResultMsg{err: err}
		}

		dash := report.Build(d, asOf)

		if err := writeWorkbook(path, dash); err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{body: ExportSummary(path, dash)}
	}
}

func writeWorkbook(path string, dash *report.Dashboard) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}

	if err := report.WriteXLSX(f, dash); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ExportSummary describes what a written workbook contains.
func ExportSummary(path string, dash *report.Dashboard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "File:       %s\n", path)
	fmt.Fprintf(&b, "As of:      %s\n", FormatDate(dash.GeneratedAt))
	fmt.Fprintf(&b, "Occupancy:  %d/%d (%s)\n", dash.Occupancy.Occupied, dash.Occupancy.Total, FormatPercent(dash.Occupancy.Rate))
	fmt.Fprintf(&b, "Revenue %d: %s\n", dash.Revenue.Year, FormatAmount(dash.Revenue.Total))
	fmt.Fprintf(&b, "Debts:      %d\n", len(dash.Debts))
	fmt.Fprintf(&b, "Buildings:  %d\n", len(dash.Buildings))
	fmt.Fprintf(&b, "Services:   %d", len(dash.Services))

	return b.String()
}
