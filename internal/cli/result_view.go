package cli

import (
	"io"
	"strings"

	"github.com/alexanderramin/deadline/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const exitHint = "Press enter to exit..."

var exitKey = key.NewBinding(key.WithKeys("enter", "q", "esc", "ctrl+c"))

// resultViewportKeyMap keeps only arrow and page keys for scrolling, so
// letter keys like q still exit.
func resultViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}

// resultModel shows a finished report until the user dismisses it. Reports
// taller than the terminal scroll in a viewport.
type resultModel struct {
	report   string
	viewport viewport.Model
	sized    bool
	done     bool
}

func newResultModel(report string) resultModel {
	return resultModel{report: report}
}

func (m resultModel) Init() tea.Cmd { return nil }

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One line for the hint.
		height := max(msg.Height-2, 1)
		if !m.sized {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.KeyMap = resultViewportKeyMap()
			m.viewport.SetContent(m.report)
			m.sized = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, exitKey) {
			m.done = true
			return m, tea.Quit
		}
		if m.sized {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m resultModel) View() string {
	if m.done {
		return ""
	}
	body := m.report
	if m.sized {
		body = m.viewport.View()
	}
	hint := formatter.Dim(exitHint)
	if m.sized && m.viewport.TotalLineCount() > m.viewport.Height {
		hint = formatter.Dim("↑/↓ scroll  ") + hint
	}
	return strings.TrimRight(body, "\n") + "\n\n" + hint
}

// runResultView shows report in a bubbletea program and blocks until it is
// dismissed. The report stays printed afterwards.
func runResultView(report string, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newResultModel(report), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return err
	}
	_, err := io.WriteString(out, report+"\n")
	return err
}
