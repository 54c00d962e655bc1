package tesseract

// AnimationFrames is the default number of ticks a move takes to commit.
const AnimationFrames = 30

// Animator queues moves and steps the in-flight one frame by frame. Moves
// animate strictly one after another; the front of the queue is the move
// in flight.
type Animator struct {
	frames  int
	counter int
	queue   []Move
}

// NewAnimator creates an idle animator that commits a move every frames
// ticks. Values below 1 are treated as 1.
func NewAnimator(frames int) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{frames: frames}
}

// Frames returns the number of ticks per move.
func (a *Animator) Frames() int {
	return a.frames
}

// Enqueue appends m to the pending queue.
func (a *Animator) Enqueue(m Move) {
	a.queue = append(a.queue, m)
}

// Tick advances the in-flight move by one frame. When the counter wraps
// to zero the move is removed from the queue and returned for commit.
// Tick is a no-op when the queue is empty.
func (a *Animator) Tick() (Move, bool) {
	if len(a.queue) == 0 {
		return Move{}, false
	}
	a.counter = (a.counter + 1) % a.frames
	if a.counter != 0 {
		return Move{}, false
	}
	m := a.queue[0]
	a.queue = a.queue[1:]
	return m, true
}

// Current returns the in-flight move and its frame counter.
func (a *Animator) Current() (Move, int, bool) {
	if len(a.queue) == 0 {
		return Move{}, 0, false
	}
	return a.queue[0], a.counter, true
}

// Pending returns the number of moves not yet committed, including the one
// in flight.
func (a *Animator) Pending() int {
	return len(a.queue)
}

// Idle reports whether no move is queued.
func (a *Animator) Idle() bool {
	return len(a.queue) == 0
}

// Queue returns a copy of the pending moves, front first.
func (a *Animator) Queue() []Move {
	return append([]Move(nil), a.queue...)
}

// Clear drops every pending move and rewinds the counter.
func (a *Animator) Clear() {
	a.queue = nil
	a.counter = 0
}
