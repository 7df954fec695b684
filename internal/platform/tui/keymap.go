package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// actionBinding pairs a key binding with the game action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// menuBinding pairs a key binding with a menu action.
type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	quit := key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))
	up := key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up"))
	down := key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down"))
	back := key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back"))

	return &KeyMapper{
		quit: quit,
		game: []actionBinding{
			{up, core.ActionUp},
			{down, core.ActionDown},
			{key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")), core.ActionRight},
			{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")), core.ActionConfirm},
			{back, core.ActionBack},
			{key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new maze")), core.ActionRestart},
		},
		menu: []menuBinding{
			{quit, MenuActionQuit},
			{up, MenuActionUp},
			{down, MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")), MenuActionSelect},
			{back, MenuActionBack},
			{key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
