package view

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Timeframe is a reporting period. Reports are computed as of the end of the
// period.
type Timeframe int

const (
	TimeframeThisMonth Timeframe = iota
	TimeframeLastMonth
	TimeframeThisQuarter
	TimeframeThisYear
	TimeframeLastYear
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	case TimeframeThisQuarter:
		return "This Quarter"
	case TimeframeThisYear:
		return "This Year"
	case TimeframeLastYear:
		return "Last Year"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// TimeframeRange returns the first and last instant of tf relative to now.
// Periods that include now end at now.
func TimeframeRange(tf Timeframe, now time.Time) (time.Time, time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch tf {
	case TimeframeLastMonth:
		start := monthStart.AddDate(0, -1, 0)
		return start, monthStart.Add(-time.Nanosecond)
	case TimeframeThisQuarter:
		q := (int(now.Month()) - 1) / 3
		return time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, now.Location()), now
	case TimeframeThisYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
	case TimeframeLastYear:
		start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond)
	}

	return monthStart, now
}

// parseCustomRange reads two YYYY-MM-DD dates and widens them to whole days.
func parseCustomRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(from))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date (YYYY-MM-DD)")
	}

	end, err := time.Parse(dateLayout, strings.TrimSpace(to))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date (YYYY-MM-DD)")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}

	return start, end.Add(24*time.Hour - time.Second), nil
}

// TimeframeSelectedMsg is emitted when the user has selected a valid period.
type TimeframeSelectedMsg struct {
	Label string
	Start time.Time
	End   time.Time
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker is a reusable component for selecting a reporting period.
type TimeframePicker struct {
	state    timeframeState
	selected Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	now func() time.Time
	err error
}

func NewTimeframePicker() TimeframePicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "Start Date: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "End Date:   "

	return TimeframePicker{
		state:      timeframeStateSelect,
		selected:   TimeframeThisMonth,
		startInput: si,
		endInput:   ei,
		now:        time.Now,
	}
}

func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case timeframeStateSelect:
			return m.updateSelect(msg)
		case timeframeStateCustom:
			return m.updateCustom(msg)
		}
	}

	if m.state == timeframeStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > TimeframeThisMonth {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == TimeframeCustom {
			m.state = timeframeStateCustom
			m.startInput.Focus()
			m.focusIndex = 0

			return m, textinput.Blink
		}

		label := m.selected.String()
		start, end := TimeframeRange(m.selected, m.now())

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Label: label, Start: start, End: end}
		}
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
			return m, textinput.Blink
		}

		m.endInput.Focus()

		return m, textinput.Blink

	case "enter":
		start, end, err := parseCustomRange(m.startInput.Value(), m.endInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil
		label := FormatDate(start) + " to " + FormatDate(end)

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Label: label, Start: start, End: end}
		}

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m TimeframePicker) updateInputs(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	var cmds []tea.Cmd
	var c tea.Cmd

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

func (m TimeframePicker) View() string {
	var b strings.Builder

	if m.state == timeframeStateCustom {
		b.WriteString(accentStyle.Render("Custom period") + "\n\n")
		b.WriteString(m.startInput.View() + "\n")
		b.WriteString(m.endInput.View() + "\n\n")
		b.WriteString(faintStyle.Render("enter confirm • tab switch field • esc back"))
	} else {
		b.WriteString(accentStyle.Render("Reporting period") + "\n\n")

		for tf := TimeframeThisMonth; tf <= TimeframeCustom; tf++ {
			if tf == m.selected {
				b.WriteString(accentStyle.Render("> "+tf.String()) + "\n")
				continue
			}

			b.WriteString("  " + tf.String() + "\n")
		}

		b.WriteString("\n" + faintStyle.Render("enter select • esc back"))
	}

	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render(m.err.Error()))
	}

	return b.String()
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = TimeframeThisMonth
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
