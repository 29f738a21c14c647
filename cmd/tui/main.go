package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/estate/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/config"
)

type model struct {
	client *client.Client

	user   string
	status string

	// active is nil while the menu is shown.
	active view.View
	width  int
	height int
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	c := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)

	return model{
		client: c,
		active: view.NewLoginModel(c),
	}
}

func (m model) Init() tea.Cmd {
	return m.active.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.active == nil {
			return m.updateMenu(msg)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case view.LoggedInMsg:
		m.user = msg.Name
		m.active = nil

		return m, nil

	case view.BackMsg:
		m.active = nil
		return m, nil

	case loggedOutMsg:
		m.user = ""
		m.status = ""
		if msg.err != nil {
			m.status = "Logout failed: " + msg.err.Error()
		}

		m.active = view.NewLoginModel(m.client)

		return m, m.active.Init()
	}

	if m.active == nil {
		return m, nil
	}

	next, cmd := m.active.Update(msg)
	if v, ok := next.(view.View); ok {
		m.active = v
	}

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var next view.View

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		return m, m.logoutCmd()
	case "1":
		next = view.NewDashboardModel(m.client)
	case "2":
		next = view.NewApartmentsModel(m.client)
	case "3":
		next = view.NewInvoiceModel(m.client)
	case "4":
		next = view.NewImportModel(m.client)
	case "5":
		next = view.NewExportModel(m.client)
	default:
		return m, nil
	}

	m.active = next
	m.status = ""

	cmds := []tea.Cmd{next.Init()}
	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.active == nil {
		menu := "Estate Admin"
		if m.user != "" {
			menu += " (" + m.user + ")"
		}

		menu += "\n\n" +
			"1. Dashboard\n" +
			"2. Apartments\n" +
			"3. Invoices\n" +
			"4. Import Roster\n" +
			"5. Export Report\n\n" +
			"l. Logout\n" +
			"q. Quit"

		if m.status != "" {
			menu += "\n\n" + m.status
		}

		return lipgloss.NewStyle().Padding(2).Render(menu)
	}

	footer := lipgloss.NewStyle().Faint(true).PaddingLeft(1).
		Render(m.active.Title() + " | " + m.active.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, m.active.View(), footer)
}

type loggedOutMsg struct {
	err error
}

func (m model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.APICtx()
		defer cancel()

		return loggedOutMsg{err: m.client.Logout(ctx)}
	}
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
