package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// DifficultyModel lets users pick a level from the difficulty table.
type DifficultyModel struct {
	levels    []config.Level
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	palette   *Palette
	selected  string
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector positioned on the level with id
// current, or on the first level.
func NewDifficultyModel(levels []config.Level, current string, width, height int) DifficultyModel {
	m := DifficultyModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		palette:   defaultPalette,
	}
	for i, l := range levels {
		if l.ID == current {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor].ID
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the level list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("SELECT DIFFICULTY", m.width)))
	b.WriteString("\n\n")

	for i, l := range m.levels {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-10s %3dx%-3d  %s", prefix, l.Name, l.Rows, l.Cols, core.FormatClock(l.TimeLimit()))
		style := m.palette.Named(l.Color)
		if i == m.cursor {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Up/Down: Choose  |  Enter: Play  |  Esc: Back  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level id, empty if none.
func (m DifficultyModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user asked to return to the main menu.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// DifficultyResult holds the outcome of the difficulty selector.
type DifficultyResult struct {
	LevelID string
	Back    bool
	Quit    bool
}

// RunDifficultyMenu shows the selector and returns the user's choice.
func RunDifficultyMenu(levels []config.Level, current string, cfg core.RuntimeConfig) (DifficultyResult, error) {
	model := NewDifficultyModel(levels, current, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return DifficultyResult{}, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return DifficultyResult{Quit: true}, nil
	}

	switch {
	case m.Selected() != "":
		return DifficultyResult{LevelID: m.Selected()}, nil
	case m.WantsBack():
		return DifficultyResult{Back: true}, nil
	default:
		return DifficultyResult{Quit: true}, nil
	}
}
