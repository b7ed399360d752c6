// Package ui implements the interactive target picker for the triad CLI.
package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ErrAborted is returned when the user leaves the picker without
// choosing an entry.
var ErrAborted = errors.New("selection aborted")

// Entry is one selectable row: a target name plus a short detail line.
type Entry struct {
	Name   string
	Detail string
}

const maxDetailWidth = 64

type pickerItem struct {
	name   string
	detail string
}

func (i pickerItem) Title() string       { return i.name }
func (i pickerItem) Description() string { return i.detail }
func (i pickerItem) FilterValue() string { return i.name + " " + i.detail }

type pickerModel struct {
	list    list.Model
	choice  string
	aborted bool
}

func newPickerModel(title string, entries []Entry) pickerModel {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, pickerItem{name: e.Name, detail: truncate(e.Detail, maxDetailWidth)})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.aborted = true
			return m, tea.Quit
		}
		// While the filter input is active the remaining keys belong
		// to it: q must type a q and esc must clear the filter.
		if m.list.FilterState() != list.Filtering {
			switch {
			case msg.Type == tea.KeyEnter:
				if item, ok := m.list.SelectedItem().(pickerItem); ok {
					m.choice = item.name
					return m, tea.Quit
				}
			case msg.Type == tea.KeyEsc,
				msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == 'q':
				m.aborted = true
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

var docStyle = lipgloss.NewStyle().Margin(1, 2)

func (m pickerModel) View() string {
	return docStyle.Render(m.list.View())
}

// Pick runs the interactive picker over entries and returns the chosen
// name. The picker renders on stderr so stdout stays free to carry the
// selection, which keeps TARGET=$(triad pick) workable.
func Pick(title string, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("picker: no entries")
	}
	program := tea.NewProgram(newPickerModel(title, entries), tea.WithOutput(os.Stderr), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("picker: %w", err)
	}
	m, ok := final.(pickerModel)
	if !ok {
		return "", fmt.Errorf("picker: unexpected final model %T", final)
	}
	if m.aborted || m.choice == "" {
		return "", ErrAborted
	}
	return m.choice, nil
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// Truncate's width budget already covers the tail.
	return runewidth.Truncate(value, width, "...")
}
