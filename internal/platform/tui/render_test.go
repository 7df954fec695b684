package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/core"
)

func TestPaletteRenderPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPalette(r)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorRed)
	s.DrawTextColored(0, 1, "██", core.ColorGray)

	assert.Equal(t, "abcd  \n██    ", p.Render(s))
}

func TestPaletteNamedFallsBackToPlain(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	p := NewPalette(r)

	assert.Equal(t, "x", p.Named("no-such-color").Render("x"))
	assert.NotEqual(t, "x", p.Named("orange").Render("x"))
	assert.Equal(t, p.Style(core.ColorOrange).Render("x"), p.Named("Orange").Render("x"))
}
