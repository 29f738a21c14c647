package view

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/report"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

type apartmentsState int

const (
	apartmentsStateBrowse apartmentsState = iota
	apartmentsStateAssign
)

type ApartmentsModel struct {
	client *client.Client

	state      apartmentsState
	table      table.Model
	apartments []*apartment.Apartment
	buildings  map[uuid.UUID]string
	residents  []*resident.Resident
	form       *huh.Form

	loading bool
	err     error
	status  string
}

func NewApartmentsModel(c *client.Client) ApartmentsModel {
	columns := []table.Column{
		{Title: "Building", Width: 20},
		{Title: "Room", Width: 6},
		{Title: "Area", Width: 8},
		{Title: "Resident", Width: 24},
		{Title: "Email", Width: 28},
	}

	return ApartmentsModel{
		client:  c,
		table:   newTable(columns, 15),
		loading: true,
	}
}

func (m ApartmentsModel) Title() string { return "Apartments" }

func (m ApartmentsModel) ShortHelp() string {
	if m.state == apartmentsStateAssign {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: assign resident | r: refresh"
}

func (m ApartmentsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ApartmentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case apartmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.apartments = msg.data.Apartments
		m.residents = msg.data.Residents
		m.buildings = make(map[uuid.UUID]string, len(msg.data.Buildings))
		for _, b := range msg.data.Buildings {
			m.buildings[b.ID] = b.Name
		}

		sortApartments(m.apartments, m.buildings)
		m.refreshTable()

		return m, nil

	case assignResultMsg:
		m.state = apartmentsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error assigning: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Room %d updated.", msg.apartment.RoomNumber)

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 5))
		return m, nil
	}

	if m.state == apartmentsStateAssign {
		return m.updateAssign(msg)
	}

	return m.updateBrowse(msg)
}

func (m ApartmentsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		case "a":
			return m.enterAssignMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ApartmentsModel) enterAssignMode() (tea.Model, tea.Cmd) {
	a := m.selected()
	if a == nil {
		return m, nil
	}

	current := ""
	if a.ResidentID != nil {
		current = a.ResidentID.String()
	}

	options := []huh.Option[string]{huh.NewOption("(vacant)", "")}
	for _, r := range m.residents {
		options = append(options, huh.NewOption(fmt.Sprintf("%s <%s>", r.FullName, r.Email), r.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("resident").
				Title("Resident").
				Options(options...).
				Value(&current).
				Height(10),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = apartmentsStateAssign
	m.table.Blur()

	return m, m.form.Init()
}

func (m ApartmentsModel) updateAssign(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = apartmentsStateBrowse
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

	a := m.selected()
	if a == nil {
		m.state = apartmentsStateBrowse
		return m, nil
	}

	var residentID *uuid.UUID
	if raw := m.form.GetString("resident"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}

		residentID = &id
	}

	return m, m.assignCmd(a.ID, residentID)
}

func (m ApartmentsModel) selected() *apartment.Apartment {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.apartments) {
		return nil
	}

	return m.apartments[idx]
}

func (m ApartmentsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading apartments...")
	}

	if m.err != nil {
		return errorView(m.err)
	}

	content := boxed(m.table.View())

	if m.state == apartmentsStateAssign && m.form != nil {
		a := m.selected()
		title := "Assign Resident"
		if a != nil {
			title = fmt.Sprintf("Assign Resident\n\n%s, room %d", m.buildingName(a.BuildingID), a.RoomNumber)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ApartmentsModel) buildingName(id uuid.UUID) string {
	if name, ok := m.buildings[id]; ok {
		return name
	}

	return report.Unknown
}

func (m *ApartmentsModel) refreshTable() {
	byID := make(map[uuid.UUID]*resident.Resident, len(m.residents))
	for _, r := range m.residents {
		byID[r.ID] = r
	}

	rows := make([]table.Row, 0, len(m.apartments))
	for _, a := range m.apartments {
		name, email := "", ""
		if a.ResidentID != nil {
			name = report.Unknown
			if r, ok := byID[*a.ResidentID]; ok {
				name, email = r.FullName, r.Email
			}
		}

		rows = append(rows, table.Row{
			m.buildingName(a.BuildingID),
			fmt.Sprintf("%d", a.RoomNumber),
			a.Area.String(),
			name,
			email,
		})
	}

	m.table.SetRows(rows)
}

func sortApartments(apartments []*apartment.Apartment, buildings map[uuid.UUID]string) {
	sort.SliceStable(apartments, func(i, j int) bool {
		bi, bj := buildings[apartments[i].BuildingID], buildings[apartments[j].BuildingID]
		if bi != bj {
			return bi < bj
		}

		return apartments[i].RoomNumber < apartments[j].RoomNumber
	})
}

type apartmentsLoadedMsg struct {
	data report.Dataset
	err  error
}

func (m ApartmentsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		d, err := m.client.Dataset(ctx)

		return apartmentsLoadedMsg{data: d, err: err}
	}
}

type assignResultMsg struct {
	apartment *apartment.Apartment
	err       error
}

func (m ApartmentsModel) assignCmd(apartmentID uuid.UUID, residentID *uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		a, err := m.client.AssignResident(ctx, apartmentID, residentID)

		return assignResultMsg{apartment: a, err: err}
	}
}
