package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/fixstr"
)

const demoCapacity = 24

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Faint(true)
	fullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type keymap struct {
	Quit      key.Binding
	Clear     key.Binding
	Backspace key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "pop rune")),
	}
}

type model struct {
	content fixstr.FixStr
	gauge   progress.Model
	keys    keymap
	refused int
}

func newModel() model {
	gauge := progress.New(progress.WithDefaultGradient())
	gauge.Width = 30

	m := model{
		content: fixstr.New(demoCapacity),
		gauge:   gauge,
		keys:    defaultKeymap(),
	}
	m.content.PushString("héllo ")
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Clear):
		m.content.Clear()
		m.refused = 0
	case key.Matches(keyMsg, m.keys.Backspace):
		m.content.PopRune()
		m.refused = 0
	default:
		for _, r := range keyMsg.Runes {
			if !m.content.PushRune(r) {
				m.refused++
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	text := m.content.String()

	status := fmt.Sprintf("%d/%d bytes · %d chars · %d cells",
		m.content.Len(), m.content.Cap(), m.content.CharLen(), displayWidth(text))
	if m.refused > 0 {
		status += fullStyle.Render(fmt.Sprintf(" · full (%d refused)", m.refused))
	}

	ratio := 0.0
	if m.content.Cap() > 0 {
		ratio = float64(m.content.Len()) / float64(m.content.Cap())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(text+"▎"),
		labelStyle.Render(status),
		m.gauge.ViewAs(ratio),
		helpStyle.Render("type to append · bksp pops a rune · ctrl+u clears · esc quits"),
	)
}

// displayWidth measures text in terminal cells, falling back to uniseg
// for clusters runewidth reports as zero-width.
func displayWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w == 0 && text != "" {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
