package maze

import "strings"

// RenderOptions controls ASCII rendering.
type RenderOptions struct {
	Wall  rune // default '#'
	Path  rune // default ' '
	Start rune // default 'S'
	Goal  rune // default 'G'
	Wide  bool // draw every cell twice horizontally for square-ish terminal output
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Wall == 0 {
		o.Wall = '#'
	}
	if o.Path == 0 {
		o.Path = ' '
	}
	if o.Start == 0 {
		o.Start = 'S'
	}
	if o.Goal == 0 {
		o.Goal = 'G'
	}
	return o
}

// Render draws the maze one text row per grid row. It is used by the
// generate command and by tests as a readable dump.
func Render(m *Maze, opts RenderOptions) string {
	opts = opts.withDefaults()

	width := 1
	if opts.Wide {
		width = 2
	}

	var sb strings.Builder
	sb.Grow(m.Rows() * (m.Cols()*width + 1))

	for r := range m.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range m.Cols() {
			ch := opts.Path
			switch {
			case r == m.start.Row && c == m.start.Col:
				ch = opts.Start
			case m.IsGoal(r, c):
				ch = opts.Goal
			case m.IsWall(r, c):
				ch = opts.Wall
			}
			for range width {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}
