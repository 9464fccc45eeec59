package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wavetap/wavetap/player"
	"github.com/wavetap/wavetap/trace"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// entry is one rendered record of the loaded log.
type entry struct {
	text    string
	derived bool
	isErr   bool
}

type dumpModel struct {
	err      error
	filename string

	entries []entry
	lastTS  uint32
	clean   bool

	vp     viewport.Model
	filter textinput.Model

	filtering bool
	query     string
	ready     bool
}

type loadedMsg struct {
	err     error
	entries []entry
	lastTS  uint32
	clean   bool
}

func newDumpModel(filename string) *dumpModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/"
	ti.Width = 40
	return &dumpModel{filename: filename, filter: ti}
}

func (m *dumpModel) Init() tea.Cmd {
	return m.loadLog
}

func (m *dumpModel) loadLog() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer f.Close()

	var out loadedMsg
	var session *player.Session
	session, err = player.NewSession(player.Config{
		Input: f,
		Visitor: &player.Visitor{
			Default: func(c *player.CallInfo, ev trace.Event) {
				tag := ev.Tag()
				indent := strings.Repeat("    ", c.ScopeDepth)
				out.entries = append(out.entries, entry{
					text:    fmt.Sprintf("%8dms (t%d) %s%s", c.Timestamp, c.ThreadID, indent, formatEvent(session, ev)),
					derived: isDerived(tag),
					isErr:   isError(tag),
				})
			},
		},
		OnEnd: func(ok bool, ts uint32) { out.clean, out.lastTS = ok, ts },
	})
	if err != nil {
		return loadedMsg{err: err}
	}
	if err := session.Run(context.Background()); err != nil {
		// show what decoded before the failure
		out.err = err
	}
	return out
}

func (m *dumpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()

	case loadedMsg:
		m.err = msg.err
		m.entries = msg.entries
		m.lastTS = msg.lastTS
		m.clean = msg.clean
		m.refresh()

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.query = m.filter.Value()
				m.refresh()
			case "esc":
				m.filtering = false
				m.filter.SetValue("")
				m.query = ""
				m.refresh()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "/":
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		case "esc":
			if m.query != "" {
				m.query = ""
				m.filter.SetValue("")
				m.refresh()
			}
		case "g":
			m.vp.GotoTop()
		case "G":
			m.vp.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh rebuilds the viewport content from the current filter.
func (m *dumpModel) refresh() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for _, e := range m.entries {
		if m.query != "" && !strings.Contains(strings.ToLower(e.text), strings.ToLower(m.query)) {
			continue
		}
		line := e.text
		switch {
		case e.isErr:
			line = errLineStyle.Render(line)
		case e.derived:
			line = dimStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	m.vp.SetContent(b.String())
}

func (m *dumpModel) View() string {
	if m.err != nil && len(m.entries) == 0 {
		return errLineStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.ready || m.entries == nil {
		return "Loading log..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("wavetap"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	if !m.clean {
		b.WriteString(" ")
		b.WriteString(errLineStyle.Render("[truncated]"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(m.filter.View())
	} else if m.query != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("filter: %q • / change • esc clear • q quit", m.query)))
	} else {
		b.WriteString(helpStyle.Render("↑/↓ scroll • g/G top/bottom • / filter • q quit"))
	}
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newDumpModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
