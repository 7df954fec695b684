package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type fakeGame struct{ id string }

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return "Fake " + f.id }
func (f *fakeGame) Description() string                  { return "a test mode" }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	require.True(t, Exists("zz_fake"))
	assert.False(t, Exists("zz_missing"))

	g, err := Create("zz_fake")
	require.NoError(t, err)
	assert.Equal(t, "zz_fake", g.ID())

	_, err = Create("zz_missing")
	assert.Error(t, err)

	var found *GameInfo
	list := List()
	for i := range list {
		if list[i].ID == "zz_fake" {
			found = &list[i]
		}
		if i > 0 {
			assert.Less(t, list[i-1].ID, list[i].ID)
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Fake zz_fake", found.Title)
	assert.Equal(t, "a test mode", found.Description)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	assert.Panics(t, func() {
		Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
	})
}
