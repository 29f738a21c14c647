package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/estate/internal/client"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateConflicts
	importStateResult
)

type ImportModel struct {
	client *client.Client

	state        importState
	filePicker   filepicker.Model
	conflictList list.Model

	status string
	err    error
}

func NewImportModel(c *client.Client) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt", ".tsv"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		client:     c,
		filePicker: fp,
	}
}

func (m ImportModel) Title() string { return "Import Roster" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateConflicts {
		return "Esc: pick another file"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateConflicts {
			var cmd tea.Cmd
			m.conflictList, cmd = m.conflictList.Update(msg)

			return m, cmd
		}

	case importResultMsg:
		if msg.result != nil && len(msg.result.Conflicts) > 0 {
			m.state = importStateConflicts
			m.conflictList = newConflictList(msg.result)

			return m, nil
		}

		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d apartments (%s, %s).",
			len(msg.result.Created), msg.result.Profile, msg.result.Charset)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateResult, importStateConflicts:
		m.state = importStateFilePick
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateImporting:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select roster file (Building, Room, Area):\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateConflicts:
		return lipgloss.NewStyle().Padding(1).Render(
			errorStyle.Render("Nothing was imported.") + "\n\n" + m.conflictList.View(),
		)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.err != nil {
		return style.Render(errorStyle.Render(m.status) + "\n\n(Esc to go back)")
	}

	return style.Render(successStyle.Render(m.status) + "\n\n(Esc to go back)")
}

type importResultMsg struct {
	result *roster.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.client.ImportRoster(ctx, filepath.Base(path), f)
		if err != nil && (result == nil || len(result.Conflicts) == 0) {
			return importResultMsg{err: err}
		}

		return importResultMsg{result: result}
	}
}

func newConflictList(result *roster.Result) list.Model {
	items := make([]list.Item, len(result.Conflicts))
	for i, c := range result.Conflicts {
		items[i] = conflictItem{conflict: c}
	}

	l := list.New(items, conflictDelegate{}, 80, 20)
	l.Title = fmt.Sprintf("%d conflicting rows", len(result.Conflicts))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}

type conflictItem struct {
	conflict roster.Conflict
}

func (i conflictItem) FilterValue() string { return i.conflict.Building }

type conflictDelegate struct{}

func (d conflictDelegate) Height() int                             { return 2 }
func (d conflictDelegate) Spacing() int                            { return 0 }
func (d conflictDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d conflictDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(conflictItem)
	if !ok {
		return
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	c := item.conflict

	fmt.Fprintf(w, "%sLine %d: %s, room %d, area %s\n      %s\n",
		cursor, c.Line, c.Building, c.RoomNumber, c.Area.String(),
		errorStyle.Render(c.Reason),
	)
}
