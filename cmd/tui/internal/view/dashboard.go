package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/report"
)

const barWidth = 40

type dashboardState int

const (
	dashboardStatePeriod dashboardState = iota
	dashboardStateLoading
	dashboardStateReady
)

type dashboardSection int

const (
	sectionDebts dashboardSection = iota
	sectionBuildings
	sectionServices
	sectionPayments
	sectionCount
)

func (s dashboardSection) String() string {
	switch s {
	case sectionDebts:
		return "Debts"
	case sectionBuildings:
		return "Buildings"
	case sectionServices:
		return "Services"
	case sectionPayments:
		return "Payments"
	}

	return "Unknown"
}

type DashboardModel struct {
	client *client.Client

	state   dashboardState
	picker  TimeframePicker
	spinner spinner.Model

	period TimeframeSelectedMsg
	dash   *report.Dashboard
	// revenue is the paid total inside the selected period.
	revenue decimal.Decimal

	section dashboardSection
	table   table.Model
	err     error
}

func NewDashboardModel(c *client.Client) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	return DashboardModel{
		client:  c,
		picker:  NewTimeframePicker(),
		spinner: s,
		table:   newTable(nil, 10),
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	if m.state == dashboardStateReady {
		return "Esc: back | Tab: next table | p: period | r: refresh"
	}

	return "Esc: back | Enter: select"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.period = msg
		m.state = dashboardStateLoading
		m.err = nil

		return m, tea.Batch(m.spinner.Tick, m.loadCmd(msg))

	case dashboardLoadedMsg:
		m.state = dashboardStateReady
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.dash = msg.dash
		m.revenue = msg.revenue
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-24, 5))
		return m, nil
	}

	switch m.state {
	case dashboardStatePeriod:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.picker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case dashboardStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m.updateReady(msg)
}

func (m DashboardModel) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "p":
			m.state = dashboardStatePeriod
			m.picker.Reset()

			return m, nil
		case "r":
			m.state = dashboardStateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadCmd(m.period))
		case "tab":
			m.section = (m.section + 1) % sectionCount
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DashboardModel) View() string {
	switch m.state {
	case dashboardStatePeriod:
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	case dashboardStateLoading:
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " Loading dashboard...")
	}

	if m.err != nil {
		return errorView(m.err)
	}

	d := m.dash
	o := d.Occupancy

	summary := fmt.Sprintf(
		"Period: %s\n\nOccupancy: %d/%d apartments (%s), %d vacant\nRevenue in period: %s\nMonth over month: %s",
		accentStyle.Render(m.period.Label),
		o.Occupied, o.Total, FormatPercent(o.Rate), o.Vacant,
		FormatAmount(m.revenue),
		FormatPercent(d.MonthlyGrowth),
	)

	tabs := make([]string, 0, sectionCount)
	for s := range sectionCount {
		label := s.String()
		if s == m.section {
			label = accentStyle.Render("[" + label + "]")
		}

		tabs = append(tabs, label)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		summary,
		"",
		fmt.Sprintf("Revenue %d", d.Revenue.Year),
		RevenueBars(d.Revenue),
		"",
		strings.Join(tabs, "  "),
		boxed(m.table.View()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// RevenueBars renders one horizontal bar per month scaled to the best month.
func RevenueBars(r report.Revenue) string {
	peak := decimal.Zero
	for _, v := range r.Months {
		if v.GreaterThan(peak) {
			peak = v
		}
	}

	var b strings.Builder

	for i, v := range r.Months {
		n := 0
		if peak.IsPositive() {
			n = int(v.Div(peak).Mul(decimal.NewFromInt(barWidth)).IntPart())
		}

		fmt.Fprintf(&b, "%s %s %s\n",
			time.Month(i+1).String()[:3],
			successStyle.Render(strings.Repeat("█", n))+strings.Repeat(" ", barWidth-n),
			FormatAmount(v),
		)
	}

	return strings.TrimRight(b.String(), "\n")
}

// PeriodRevenue sums monthly revenue for every month touched by [start, end].
func PeriodRevenue(d report.Dataset, start, end time.Time) decimal.Decimal {
	total := decimal.Zero

	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !cur.After(last) {
		total = total.Add(report.RevenueIn(d, cur.Year(), cur.Month()))
		cur = cur.AddDate(0, 1, 0)
	}

	return total
}

func (m *DashboardModel) refreshTable() {
	if m.dash == nil {
		return
	}

	var (
		columns []table.Column
		rows    []table.Row
	)

	switch m.section {
	case sectionDebts:
		columns = []table.Column{
			{Title: "Building", Width: 16},
			{Title: "Room", Width: 6},
			{Title: "Resident", Width: 20},
			{Title: "Amount", Width: 12},
			{Title: "Status", Width: 9},
			{Title: "Due", Width: 11},
			{Title: "Months", Width: 7},
		}

		for _, debt := range m.dash.Debts {
			rows = append(rows, table.Row{
				debt.Building,
				debt.Apartment,
				debt.Resident,
				FormatAmount(debt.Amount),
				string(debt.Status),
				FormatDate(debt.DueDate),
				strconv.Itoa(debt.OverdueMonths),
			})
		}

	case sectionBuildings:
		columns = []table.Column{
			{Title: "Building", Width: 20},
			{Title: "Occupied", Width: 10},
			{Title: "Rate", Width: 8},
			{Title: "Revenue", Width: 14},
			{Title: "Avg/Apt", Width: 12},
		}

		for _, b := range m.dash.Buildings {
			rows = append(rows, table.Row{
				b.Name,
				fmt.Sprintf("%d/%d", b.Occupied, b.Total),
				FormatPercent(b.Rate),
				FormatAmount(b.Revenue),
				FormatAmount(b.AverageRevenue),
			})
		}

	case sectionServices:
		columns = []table.Column{
			{Title: "Service", Width: 20},
			{Title: "Revenue", Width: 14},
			{Title: "Items", Width: 7},
			{Title: "Avg Qty", Width: 8},
			{Title: "Active", Width: 7},
			{Title: "Inactive", Width: 9},
		}

		for _, s := range m.dash.Services {
			rows = append(rows, table.Row{
				s.Name,
				FormatAmount(s.Revenue),
				strconv.Itoa(s.LineItems),
				fmt.Sprintf("%.2f", s.AverageQuantity),
				strconv.Itoa(s.Active),
				strconv.Itoa(s.Inactive),
			})
		}

	case sectionPayments:
		columns = []table.Column{
			{Title: "Month", Width: 9},
			{Title: "Payments", Width: 9},
			{Title: "Amount", Width: 14},
			{Title: "On time", Width: 8},
			{Title: "Late", Width: 6},
		}

		for _, p := range m.dash.Payments {
			rows = append(rows, table.Row{
				p.Month,
				strconv.Itoa(p.Count),
				FormatAmount(p.Amount),
				strconv.Itoa(p.OnTime),
				strconv.Itoa(p.Late),
			})
		}
	}

	// Rows must be cleared first so they never outnumber the new columns.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

type dashboardLoadedMsg struct {
	dash    *report.Dashboard
	revenue decimal.Decimal
	err     error
}

func (m DashboardModel) loadCmd(period TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		d, err := m.client.Dataset(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{
			dash:    report.Build(d, period.End),
			revenue: PeriodRevenue(d, period.Start, period.End),
		}
	}
}
