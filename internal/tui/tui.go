package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/evolve-adventure/internal/console"
	"github.com/tatianab/evolve-adventure/internal/engine"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateEnded
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	out       *console.Buffer
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#3A6B35")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	endStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C792EA")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7FB069")).
			Bold(true).
			Underline(true)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What would you like to do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		state:     statePlaying,
		engine:    eng,
		out:       &console.Buffer{},
		textInput: ti,
		viewport:  viewport.New(0, 0),
	}
	eng.Welcome(m.out)
	m.out.BlankLine()
	eng.WriteLocation(m.out)
	m.flush(gameStyle)
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateEnded {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			action := m.textInput.Value()
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()
			m = m.play(action)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = max(msg.Height-6, 1)
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// play sends one command to the engine and appends what it printed.
func (m model) play(action string) model {
	m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+action) + "\n\n"

	if st := m.engine.Handle(action, m.out); st != engine.Playing {
		m.flush(endStyle)
		m.state = stateEnded
		m.textInput.Blur()
		return m
	}
	m.out.BlankLine()
	m.engine.WriteLocation(m.out)
	m.flush(gameStyle)
	return m
}

// flush moves buffered engine output into the log.
func (m *model) flush(style lipgloss.Style) {
	text := m.out.String()
	m.out.Reset()
	if w := m.logWidth(); w > 0 {
		style = style.Width(w)
	}
	m.gameLog += style.Render(text) + "\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	logView := m.viewport.View()
	stateView := m.renderState()

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		logView,
		stateView,
	)

	var bottom string
	switch m.state {
	case statePlaying:
		bottom = lipgloss.JoinVertical(lipgloss.Left,
			"\n"+m.textInput.View(),
			"\n"+helpStyle.Render("Commands: go <place>, hunt, consume <item>, get <item>, quit. Esc exits."),
		)
	case stateEnded:
		bottom = "\n" + helpStyle.Render(fmt.Sprintf("Game over (%s). Press any key to exit.", strings.ToLower(m.engine.Status().String())))
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, mainView, bottom) + "\n"
}

func (m model) renderState() string {
	p := m.engine.Player()

	location := titleStyle.Render("LOCATION") + "\n" + string(p.Location) + "\n\n"
	maturity := titleStyle.Render("MATURITY") + "\n" + fmt.Sprintf("%d", p.MaturityLevel) + "\n\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	if len(p.Inventory) == 0 {
		inventory = "(empty)"
	} else {
		for _, item := range p.Inventory {
			inventory += "- " + string(item) + "\n"
		}
	}

	content := location + maturity + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run plays one session in the terminal.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
