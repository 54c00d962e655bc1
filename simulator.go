package tesseract

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// SolveStub is returned by Solve; no solver is implemented.
const SolveStub = "unimplemented"

// tables holds the geometry and action table shared by every Simulator.
type tables struct {
	geometry *Geometry
	actions  *ActionTable
}

var sharedTables = sync.OnceValues(func() (*tables, error) {
	g := NewGeometry()
	t, err := BuildActions(context.Background(), g)
	if err != nil {
		return nil, err
	}
	return &tables{geometry: g, actions: t}, nil
})

// Simulator tracks the committed puzzle state, the queue of moves still
// animating, and projects what should be on screen. It is not safe for
// concurrent use; a single driver calls Input, Tick and Project in turn.
type Simulator struct {
	geometry *Geometry
	actions  *ActionTable
	state    State
	anim     *Animator

	moveHistory bool
	history     []Move
	logger      *slog.Logger

	onEnqueue []func(Move)
	onReject  []func(token string)
	onCommit  []func(Move)
}

// New creates a simulator in the solved state. It panics if the facelet
// geometry is inconsistent, which cannot happen at steady state.
func New(opts ...Option) *Simulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	t, err := sharedTables()
	if err != nil {
		panic(fmt.Sprintf("tesseract: building action table: %v", err))
	}

	return &Simulator{
		geometry:    t.geometry,
		actions:     t.actions,
		state:       NewState(),
		anim:        NewAnimator(cfg.animationFrames),
		moveHistory: cfg.moveHistory,
		logger:      cfg.logger,
	}
}

// OnEnqueue adds a callback fired when a move joins the queue.
func (s *Simulator) OnEnqueue(cb func(Move)) {
	s.onEnqueue = append(s.onEnqueue, cb)
}

// OnReject adds a callback fired when a token or move is dropped.
func (s *Simulator) OnReject(cb func(token string)) {
	s.onReject = append(s.onReject, cb)
}

// OnCommit adds a callback fired when a move is applied to the state.
// Callbacks run in the order they were added.
func (s *Simulator) OnCommit(cb func(Move)) {
	s.onCommit = append(s.onCommit, cb)
}

func (s *Simulator) reject(token string) {
	for _, cb := range s.onReject {
		cb(token)
	}
}

// Input parses token and queues the move. Malformed tokens are dropped and
// leave the queue unchanged; the result only reports whether the token was
// accepted.
func (s *Simulator) Input(token string) bool {
	m, err := ParseMove(token)
	if err != nil {
		s.logger.Debug("move rejected", "token", token)
		s.reject(token)
		return false
	}
	return s.Enqueue(m)
}

// Enqueue queues m for animation. Moves that name no rotation are dropped.
func (s *Simulator) Enqueue(m Move) bool {
	if _, ok := s.actions.Lookup(m); !ok {
		s.reject(m.Notation())
		return false
	}
	s.anim.Enqueue(m)
	for _, cb := range s.onEnqueue {
		cb(m)
	}
	return true
}

// Tick advances the animation by one frame, committing the in-flight move
// when its last frame completes. It is a no-op when idle.
func (s *Simulator) Tick() {
	m, done := s.anim.Tick()
	if done {
		s.commit(m)
	}
}

// Settle ticks until no move is pending and returns the number of ticks.
func (s *Simulator) Settle() int {
	n := 0
	for !s.anim.Idle() {
		s.Tick()
		n++
	}
	return n
}

// Apply commits m immediately, without animation. Unknown moves are
// ignored.
func (s *Simulator) Apply(m Move) {
	if _, ok := s.actions.Lookup(m); !ok {
		return
	}
	s.commit(m)
}

func (s *Simulator) commit(m Move) {
	s.state = s.state.ApplyMove(s.actions, m)
	if s.moveHistory {
		s.history = append(s.history, m)
	}
	s.logger.Debug("move committed", "move", m.Notation(), "pending", s.anim.Pending())
	for _, cb := range s.onCommit {
		cb(m)
	}
}

// Project returns the drawing list for the current frame viewed along
// axis from side sign. It returns "" for an invalid view.
func (s *Simulator) Project(axis Axis, sign int) string {
	sprites, err := s.Frame(View{Axis: axis, Sign: sign})
	if err != nil {
		return ""
	}
	return FormatSprites(sprites)
}

// Frame returns the sprites for the current frame, farthest first.
func (s *Simulator) Frame(v View) ([]Sprite, error) {
	coords := s.DisplayCoords()
	return Project(&coords, &s.state, v)
}

// DisplayCoords returns the coordinates on screen this frame: the rest
// geometry, or the in-flight move's interpolation of it.
func (s *Simulator) DisplayCoords() [Len]Coord {
	m, counter, ok := s.anim.Current()
	if !ok {
		return s.geometry.Coords()
	}
	a, _ := s.actions.Lookup(m)
	return DisplayCoords(s.geometry, a, counter, s.anim.Frames())
}

// Solve is a placeholder; it always returns SolveStub.
func (s *Simulator) Solve() string {
	return SolveStub
}

// Reset returns to the solved state and drops pending moves and history.
func (s *Simulator) Reset() {
	s.state = NewState()
	s.anim.Clear()
	s.history = nil
}

// State returns the committed state.
func (s *Simulator) State() State {
	return s.state
}

// Progress returns the progress of the committed state.
func (s *Simulator) Progress() Progress {
	return ProgressOf(s.state)
}

// IsSolved returns true if the committed state is solved.
func (s *Simulator) IsSolved() bool {
	return s.state.IsSolved()
}

// Current returns the in-flight move and its frame counter.
func (s *Simulator) Current() (Move, int, bool) {
	return s.anim.Current()
}

// Queue returns the pending moves, front first.
func (s *Simulator) Queue() []Move {
	return s.anim.Queue()
}

// Pending returns the number of queued moves, including the one in flight.
func (s *Simulator) Pending() int {
	return s.anim.Pending()
}

// Animating reports whether a move is in flight.
func (s *Simulator) Animating() bool {
	_, _, ok := s.anim.Current()
	return ok
}

// Idle reports whether no move is queued.
func (s *Simulator) Idle() bool {
	return s.anim.Idle()
}

// Frames returns the number of ticks a move takes to commit.
func (s *Simulator) Frames() int {
	return s.anim.Frames()
}

// History returns the committed moves, oldest first.
func (s *Simulator) History() []Move {
	return append([]Move(nil), s.history...)
}

// Geometry returns the shared facelet geometry.
func (s *Simulator) Geometry() *Geometry {
	return s.geometry
}

// Actions returns the shared action table.
func (s *Simulator) Actions() *ActionTable {
	return s.actions
}
