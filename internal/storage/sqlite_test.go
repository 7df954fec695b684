package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	// Deterministic, strictly increasing timestamps.
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return store
}

func win(difficulty string, elapsed time.Duration, score int) Run {
	return Run{
		Mode:       "labyrinth",
		Difficulty: difficulty,
		Rows:       15,
		Cols:       15,
		Won:        true,
		Ranked:     true,
		Elapsed:    elapsed,
		Moves:      40,
		Score:      score,
	}
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(win("easy", 42*time.Second, 1000))
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	got, err := store.RunByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "easy", got.Difficulty)
	assert.Equal(t, 42*time.Second, got.Elapsed)
	assert.True(t, got.Won)
	assert.True(t, got.Ranked)
	assert.Equal(t, 1000, got.Score)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 1, 0, time.UTC), got.CreatedAt)

	_, err = store.RunByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBestRunsOrdersByTime(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		win("easy", 90*time.Second, 400),
		win("easy", 30*time.Second, 1000),
		win("easy", 60*time.Second, 700),
		win("hard", 10*time.Second, 9000),
	}
	lost := win("easy", 5*time.Second, 0)
	lost.Won = false
	practice := win("easy", 3*time.Second, 0)
	practice.Mode = "labyrinth_practice"
	practice.Ranked = false
	runs = append(runs, lost, practice)

	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	best, err := store.BestRuns("easy", 10)
	require.NoError(t, err)
	require.Len(t, best, 3)
	assert.Equal(t, 30*time.Second, best[0].Elapsed)
	assert.Equal(t, 60*time.Second, best[1].Elapsed)
	assert.Equal(t, 90*time.Second, best[2].Elapsed)

	top, err := store.BestRuns("easy", 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	bt, ok, err := store.BestTime("easy")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, bt)

	_, ok, err = store.BestTime("extreme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []string{"easy", "normal", "hard"} {
		_, err := store.SaveRun(win(d, time.Minute, 100))
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "hard", recent[0].Difficulty)
	assert.Equal(t, "normal", recent[1].Difficulty)
}

func TestDifficultyStats(t *testing.T) {
	store := openTestStore(t)

	lost := win("normal", 3*time.Minute, 0)
	lost.Won = false
	for _, r := range []Run{win("normal", 60*time.Second, 1500), win("normal", 120*time.Second, 900), lost} {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	st, err := store.GetDifficultyStats("normal")
	require.NoError(t, err)
	assert.Equal(t, 3, st.Played)
	assert.Equal(t, 2, st.Won)
	assert.Equal(t, 60*time.Second, st.BestTime)
	assert.Equal(t, 90*time.Second, st.AvgTime)
	assert.Equal(t, 1500, st.BestScore)
	assert.InDelta(t, 2.0/3.0, st.WinRate(), 1e-9)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 3, 0, time.UTC), st.LastPlayed)

	empty, err := store.GetDifficultyStats("extreme")
	require.NoError(t, err)
	assert.Zero(t, empty.Played)
	assert.Zero(t, empty.WinRate())

	all, err := store.GetAllDifficultyStats()
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Contains(t, all, "normal")
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	for _, d := range []string{"easy", "easy", "hard"} {
		_, err := store.SaveRun(win(d, time.Minute, 100))
		require.NoError(t, err)
	}

	require.NoError(t, store.ClearRuns("easy"))
	recent, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "hard", recent[0].Difficulty)

	require.NoError(t, store.ClearRuns(""))
	recent, err = store.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRunFromSummary(t *testing.T) {
	r := RunFromSummary(core.RunSummary{
		Mode:       "labyrinth",
		Difficulty: "hard",
		Rows:       35,
		Cols:       35,
		Won:        true,
		Elapsed:    time.Minute,
		Moves:      120,
		Score:      2300,
		Ranked:     true,
	})

	assert.Empty(t, r.ID)
	assert.Equal(t, "hard", r.Difficulty)
	assert.Equal(t, 35, r.Rows)
	assert.True(t, r.Ranked)
	assert.Equal(t, 2300, r.Score)
}
