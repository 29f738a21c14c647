package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/report"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStateLineItem
)

var invoiceStatusFilters = []invoice.Status{"", invoice.StatusPending, invoice.StatusOverdue, invoice.StatusPaid}

type InvoiceModel struct {
	client *client.Client

	state     invoicesState
	table     table.Model
	data      report.Dataset
	invoices  []*invoice.Invoice
	labels    map[uuid.UUID]string
	services  map[uuid.UUID]string
	filterIdx int
	form      *huh.Form

	loading bool
	err     error
	status  string
}

func NewInvoiceModel(c *client.Client) InvoiceModel {
	columns := []table.Column{
		{Title: "Apartment", Width: 24},
		{Title: "Status", Width: 9},
		{Title: "Due", Width: 11},
		{Title: "Total", Width: 12},
		{Title: "Items", Width: 6},
	}

	return InvoiceModel{
		client:  c,
		table:   newTable(columns, 12),
		loading: true,
	}
}

func (m InvoiceModel) Title() string { return "Invoices" }

func (m InvoiceModel) ShortHelp() string {
	if m.state == invoicesStateLineItem {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: add line item | s: status filter | r: refresh"
}

func (m InvoiceModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.data = msg.data
		m.indexDataset()
		m.refreshTable()

		return m, nil

	case lineItemResultMsg:
		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error adding line item: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Added %s x%d (%s).", msg.item.ServiceName, msg.item.Quantity, FormatAmount(msg.item.Total))

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-20, 5))
		return m, nil
	}

	if m.state == invoicesStateLineItem {
		return m.updateLineItem(msg)
	}

	return m.updateBrowse(msg)
}

func (m InvoiceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(invoiceStatusFilters)
			m.refreshTable()

			return m, nil
		case "n":
			return m.enterLineItemMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoiceModel) enterLineItemMode() (tea.Model, tea.Cmd) {
	inv := m.selected()
	if inv == nil {
		return m, nil
	}

	if inv.Status == invoice.StatusPaid {
		m.status = "Paid invoices cannot take new line items."
		return m, nil
	}

	var options []huh.Option[string]
	for _, s := range m.data.Subscriptions {
		if s.ApartmentID != inv.ApartmentID || s.Status != subscription.StatusActive {
			continue
		}

		options = append(options, huh.NewOption(m.serviceName(s.ServiceID), s.ID.String()))
	}

	if len(options) == 0 {
		m.status = "The apartment has no active subscriptions."
		return m, nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("subscription").
				Title("Service").
				Options(options...),

			huh.NewInput().
				Key("quantity").
				Title("Quantity").
				Placeholder("1").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("quantity must be a positive number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = invoicesStateLineItem
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoiceModel) updateLineItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	inv := m.selected()
	if inv == nil {
		m.state = invoicesStateBrowse
		return m, nil
	}

	subID, err := uuid.Parse(m.form.GetString("subscription"))
	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	// Validated by the form.
	qty, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("quantity")))

	return m, m.createLineItemCmd(client.LineItemRequest{
		Quantity:       qty,
		ApartmentID:    inv.ApartmentID,
		SubscriptionID: subID,
		InvoiceID:      &inv.ID,
	})
}

func (m InvoiceModel) selected() *invoice.Invoice {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.invoices) {
		return nil
	}

	return m.invoices[idx]
}

func (m InvoiceModel) serviceName(id uuid.UUID) string {
	if name, ok := m.services[id]; ok {
		return name
	}

	return report.Unknown
}

func (m InvoiceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return errorView(m.err)
	}

	filter := "All"
	if s := invoiceStatusFilters[m.filterIdx]; s != "" {
		filter = string(s)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Filter: [s] Status: "+accentStyle.Render(filter)),
		boxed(m.table.View()),
		m.lineItemsView(),
	)

	if m.state == invoicesStateLineItem && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Line Item\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m InvoiceModel) lineItemsView() string {
	inv := m.selected()
	if inv == nil {
		return ""
	}

	var items []*billing.LineItem
	for _, li := range m.data.LineItems {
		if li.InvoiceID == inv.ID {
			items = append(items, li)
		}
	}

	if len(items) == 0 {
		return faintStyle.Render("No line items.")
	}

	var b strings.Builder

	b.WriteString("Line items:\n")
	for _, li := range items {
		fmt.Fprintf(&b, "  %-20s x%-4d %12s\n", li.ServiceName, li.Quantity, FormatAmount(li.Total))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *InvoiceModel) indexDataset() {
	buildings := make(map[uuid.UUID]string, len(m.data.Buildings))
	for _, b := range m.data.Buildings {
		buildings[b.ID] = b.Name
	}

	m.labels = make(map[uuid.UUID]string, len(m.data.Apartments))
	for _, a := range m.data.Apartments {
		name, ok := buildings[a.BuildingID]
		if !ok {
			name = report.Unknown
		}

		m.labels[a.ID] = fmt.Sprintf("%s #%d", name, a.RoomNumber)
	}

	m.services = make(map[uuid.UUID]string, len(m.data.Services))
	for _, s := range m.data.Services {
		m.services[s.ID] = s.Name
	}
}

func (m *InvoiceModel) refreshTable() {
	status := invoiceStatusFilters[m.filterIdx]

	counts := make(map[uuid.UUID]int, len(m.data.Invoices))
	for _, li := range m.data.LineItems {
		counts[li.InvoiceID]++
	}

	m.invoices = make([]*invoice.Invoice, 0, len(m.data.Invoices))
	for _, inv := range m.data.Invoices {
		if status == "" || inv.Status == status {
			m.invoices = append(m.invoices, inv)
		}
	}

	sort.SliceStable(m.invoices, func(i, j int) bool {
		return m.invoices[i].DueDate.After(m.invoices[j].DueDate)
	})

	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		label, ok := m.labels[inv.ApartmentID]
		if !ok {
			label = report.Unknown
		}

		rows = append(rows, table.Row{
			label,
			string(inv.Status),
			FormatDate(inv.DueDate),
			FormatAmount(inv.TotalAmount),
			strconv.Itoa(counts[inv.ID]),
		})
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

type invoicesLoadedMsg struct {
	data report.Dataset
	err  error
}

func (m InvoiceModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		d, err := m.client.Dataset(ctx)

		return invoicesLoadedMsg{data: d, err: err}
	}
}

type lineItemResultMsg struct {
	item *billing.LineItem
	err  error
}

func (m InvoiceModel) createLineItemCmd(req client.LineItemRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		item, err := m.client.CreateLineItem(ctx, req)

		return lineItemResultMsg{item: item, err: err}
	}
}
