package labyrinth

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhasePaused         // player paused; the countdown is frozen
	PhaseWon            // goal reached
	PhaseLost           // countdown expired
	PhaseTooSmall       // terminal cannot fit the minimum view; the countdown is frozen
	PhaseFailed         // config or generation error; nothing to play
)

var phaseNames = [...]string{
	PhasePlaying:  "playing",
	PhasePaused:   "paused",
	PhaseWon:      "won",
	PhaseLost:     "lost",
	PhaseTooSmall: "too_small",
	PhaseFailed:   "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Finished reports whether the run is over.
func (p Phase) Finished() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseFailed
}
