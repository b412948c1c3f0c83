package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"
)

var paceNotes = map[config.Pace]string{
	config.PaceRelaxed: "watch every cascade",
	config.PaceNormal:  "the default",
	config.PaceFast:    "short pauses",
	config.PaceInstant: "cascades resolve at once",
}

// PaceModel lets the user choose how fast cascades play out.
type PaceModel struct {
	paces     []config.Pace
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.Pace
	quitting  bool
	back      bool
}

// NewPaceModel starts with the cursor on the normal pace.
func NewPaceModel(width, height int) PaceModel {
	m := PaceModel{
		paces:     config.Paces(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.paces {
		if p == config.PaceNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PaceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.paces)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		p := m.paces[m.cursor]
		m.selected = &p
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the pace list.
func (m PaceModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("CASCADE PACE", m.width))
	b.WriteString("\n\n")

	for i, p := range m.paces {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		t := config.TimingForPace(p)
		line := fmt.Sprintf("%s%-8s %4dms  %s", cursor, p, t.StepDelayMS, paceNotes[p])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen pace, or nil while choosing.
func (m PaceModel) Selected() *config.Pace {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m PaceModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the user pressed back.
func (m PaceModel) WantsBack() bool {
	return m.back
}

// RunPaceSelector asks for a cascade pace. It returns nil if the user backed
// out or quit.
func RunPaceSelector(cfg core.RuntimeConfig) (*config.Pace, error) {
	p := tea.NewProgram(NewPaceModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(PaceModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
