package tesseract

// ProgressPhase summarizes how close the puzzle is to solved. Phases are
// ordered, allowing comparison with < and >.
type ProgressPhase int

const (
	// PhaseScrambled indicates no cell is uniformly colored.
	PhaseScrambled ProgressPhase = iota

	// PhasePartial indicates at least one cell is uniformly colored.
	PhasePartial

	// PhaseSolved indicates every cell is uniformly colored.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p ProgressPhase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhasePartial:
		return "partial"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Progress describes the committed state.
type Progress struct {
	Phase       ProgressPhase
	SolvedFaces int // cells showing only their own color
	Misplaced   int // positions showing a foreign color
}

// ProgressOf computes the progress of s.
func ProgressOf(s State) Progress {
	p := Progress{
		SolvedFaces: s.SolvedFaces(),
		Misplaced:   s.Misplaced(),
	}
	switch {
	case p.Misplaced == 0:
		p.Phase = PhaseSolved
	case p.SolvedFaces > 0:
		p.Phase = PhasePartial
	default:
		p.Phase = PhaseScrambled
	}
	return p
}
