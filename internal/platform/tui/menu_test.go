package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/config"
	_ "github.com/vovakirdan/tui-maze/internal/games/labyrinth"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuListsModesAndScoreboard(t *testing.T) {
	m := NewMenuModel(testRuntime())

	require.GreaterOrEqual(t, len(m.items), 3)
	assert.Equal(t, "labyrinth", m.items[0].GameID)
	assert.Equal(t, "labyrinth_practice", m.items[1].GameID)

	last := m.items[len(m.items)-1]
	assert.Equal(t, "Scoreboard", last.Title)
	assert.Empty(t, last.GameID)

	view := m.View()
	assert.Contains(t, view, "M A Z E")
	assert.Contains(t, view, "Reach the exit before time runs out.")
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(testRuntime())

	m = updateMenu(t, m, keyUp)
	assert.Equal(t, 0, m.cursor, "cursor stays at the top")

	m = updateMenu(t, m, keyDown)
	m = updateMenu(t, m, keyEnter)

	require.NotNil(t, m.Selected())
	assert.Equal(t, "labyrinth_practice", m.Selected().GameID)
	assert.False(t, m.WantsScoreboard())
}

func TestMenuScoreboardEntry(t *testing.T) {
	m := NewMenuModel(testRuntime())
	for range len(m.items) {
		m = updateMenu(t, m, keyDown)
	}
	m = updateMenu(t, m, keyEnter)

	assert.True(t, m.WantsScoreboard())
	assert.Nil(t, m.Selected())

	m = NewMenuModel(testRuntime())
	m = updateMenu(t, m, keyTab)
	assert.True(t, m.WantsScoreboard())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(testRuntime())
	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 70, Height: 20})

	assert.Equal(t, 70, m.Config().ScreenW)
	assert.Equal(t, 20, m.Config().ScreenH)
}

func updateDifficulty(t *testing.T, m DifficultyModel, msg tea.Msg) DifficultyModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(DifficultyModel)
	require.True(t, ok)
	return out
}

func TestDifficultyModel(t *testing.T) {
	levels := config.DefaultLabyrinthConfig().Levels

	m := NewDifficultyModel(levels, "hard", 80, 24)
	assert.Equal(t, 2, m.cursor)

	view := m.View()
	assert.Contains(t, view, "SELECT DIFFICULTY")
	assert.Contains(t, view, "Very Hard")
	assert.Contains(t, view, "04:00")

	m = updateDifficulty(t, m, keyDown)
	m = updateDifficulty(t, m, keyEnter)
	assert.Equal(t, "very_hard", m.Selected())

	m = NewDifficultyModel(levels, "missing", 80, 24)
	assert.Equal(t, 0, m.cursor)
	m = updateDifficulty(t, m, keyEsc)
	assert.True(t, m.WantsBack())
	assert.Empty(t, m.Selected())
}

func TestScoreboardShowsBestRunsPerDifficulty(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{Mode: "labyrinth", Difficulty: "easy", Rows: 15, Cols: 15, Won: true, Ranked: true, Elapsed: 40 * time.Second, Moves: 30},
		{Mode: "labyrinth", Difficulty: "easy", Rows: 15, Cols: 15, Won: true, Ranked: true, Elapsed: 25 * time.Second, Moves: 22},
		{Mode: "labyrinth", Difficulty: "easy", Rows: 15, Cols: 15, Won: false, Ranked: true, Elapsed: 120 * time.Second},
		{Mode: "labyrinth", Difficulty: "normal", Rows: 25, Cols: 25, Won: true, Ranked: true, Elapsed: 90 * time.Second},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	levels := config.DefaultLabyrinthConfig().Levels
	m := NewScoreboardModel(store, levels, 100, 30)

	require.Len(t, m.runs, 2)
	assert.Equal(t, 25*time.Second, m.runs[0].Elapsed)
	require.NotNil(t, m.stats)
	assert.Equal(t, 3, m.stats.Played)
	assert.Contains(t, m.View(), "BEST TIMES - Easy")
	assert.Contains(t, m.statsLine(), "Played: 3")

	next, _ := m.Update(keyTab)
	m = next.(ScoreboardModel)
	assert.Equal(t, 1, m.levelCursor)
	require.Len(t, m.runs, 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, len(levels)-1, m.levelCursor, "wraps around")
	assert.Empty(t, m.runs)
	assert.Equal(t, "No runs played yet", m.statsLine())

	next, _ = m.Update(keyEsc)
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, config.DefaultLabyrinthConfig().Levels, 60, 20)

	assert.Empty(t, m.runs)
	assert.Contains(t, m.View(), "No escapes recorded yet.")
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out
}

func TestSessionFlow(t *testing.T) {
	levels := config.DefaultLabyrinthConfig().Levels
	m := NewSessionModel(nil, testRuntime(), levels, "easy")

	m = updateSession(t, m, keyEnter)
	require.Equal(t, viewDifficulty, m.view)
	assert.Equal(t, "labyrinth", m.pendingID)

	m = updateSession(t, m, keyEnter)
	require.Equal(t, viewGame, m.view)
	require.NotNil(t, m.gameModel)
	assert.Contains(t, m.View(), "Easy")

	m = updateSession(t, m, runeKey('p'))
	m = updateSession(t, m, TickMsg{Chain: m.gameModel.chain})
	m = updateSession(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)
	assert.Nil(t, m.gameModel)
	assert.Equal(t, "easy", m.lastLevel)
}

func TestSessionDifficultyBackAndScores(t *testing.T) {
	levels := config.DefaultLabyrinthConfig().Levels
	m := NewSessionModel(nil, testRuntime(), levels, "easy")

	m = updateSession(t, m, keyEnter)
	m = updateSession(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)

	m = updateSession(t, m, keyTab)
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "BEST TIMES")

	m = updateSession(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)

	m = updateSession(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
