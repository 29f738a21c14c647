package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/estate/internal/client"
)

// LoggedInMsg is emitted once the client holds a session.
type LoggedInMsg struct {
	Name string
}

type LoginModel struct {
	client *client.Client

	form *huh.Form

	submitting bool
	err        error
}

func NewLoginModel(c *client.Client) LoginModel {
	return LoginModel{client: c, form: newLoginForm()}
}

func (m LoginModel) Title() string     { return "Sign In" }
func (m LoginModel) ShortHelp() string { return "Enter: submit | Ctrl+C: quit" }

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func newLoginForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("enter a valid email")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.err = result.err
			m.form = newLoginForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoggedInMsg{Name: result.name} }
	}

	if m.submitting {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitting = true
	m.err = nil

	return m, m.loginCmd(m.form.GetString("email"), m.form.GetString("password"))
}

func (m LoginModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render("Estate Admin")

	body := m.form.View()
	if m.submitting {
		body = "Signing in..."
	}

	if m.err != nil {
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + body
	}

	return lipgloss.NewStyle().Padding(2).Render(header + "\n\n" + body)
}

type loginResultMsg struct {
	name string
	err  error
}

func (m LoginModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		if err := m.client.Login(ctx, email, password); err != nil {
			return loginResultMsg{err: err}
		}

		profile, err := m.client.Profile(ctx)
		if err != nil {
			return loginResultMsg{err: err}
		}

		return loginResultMsg{name: profile.FullName}
	}
}
