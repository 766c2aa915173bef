// Package progressui renders a bubbletea progress view over a stream
// of per-file formatting events: queued, formatting, done, or error.
package progressui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Status is one file's position in the formatting pipeline.
type Status uint8

const (
	StatusQueued Status = iota
	StatusFormatting
	StatusDone
	StatusError
)

// Event reports a status transition for one file.
type Event struct {
	Path   string
	Status Status
}

type model struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path   string
	status Status
}

type eventMsg Event
type doneMsg struct{}

// NewModel returns a bubbletea model that renders progress for files,
// fed by events. The caller is responsible for closing events once
// every file has reached StatusDone or StatusError.
func NewModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, f := range files {
		items = append(items, fileItem{path: f, status: StatusQueued})
		index[f] = i
	}
	return &model{title: title, events: events, spinner: sp, prog: prog, items: items, index: index, width: 80}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.apply(Event(msg))
		return m, tea.Batch(cmd, m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		p, cmd := m.prog.Update(msg)
		m.prog = p.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}
	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		styled := styleFor(item.status).Render(fmt.Sprintf("%12s", labelFor(item.status)))
		b.WriteString(fmt.Sprintf("  %s %s\n", styled, name))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *model) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *model) apply(ev Event) tea.Cmd {
	idx, ok := m.index[ev.Path]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status

	total := 0.0
	for _, item := range m.items {
		if item.status == StatusDone || item.status == StatusError {
			total += 1.0
		} else if item.status == StatusFormatting {
			total += 0.5
		}
	}
	pct := total / float64(len(m.items))
	return m.prog.SetPercent(pct)
}

func labelFor(s Status) string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusFormatting:
		return "formatting"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return ""
	}
}

func styleFor(s Status) lipgloss.Style {
	switch s {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case StatusFormatting:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
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
	return runewidth.Truncate(value, width-3, "...")
}
