package recorder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aditya-r-m/twisty-tesseract"
	"github.com/aditya-r-m/twisty-tesseract/internal/storage"
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session journals the moves a simulator commits.
type Session struct {
	stateFile *StateFile
	logger    *slog.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int

	notes      string
	appVersion string
	frames     int

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository
}

// NewSession creates a new session manager. stateFile may be nil.
func NewSession(db *storage.DB, stateFile *StateFile, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		stateFile:   stateFile,
		logger:      logger,
		state:       StateIdle,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// Start starts a new recording session.
func (s *Session) Start(notes, scramble, appVersion string, animationFrames int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := s.sessionRepo.Create(notes, scramble, appVersion, animationFrames)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.sessionID = sessionID
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording
	s.notes = notes
	s.appVersion = appVersion
	s.frames = animationFrames

	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(sessionID); err != nil {
			s.logger.Warn("failed to update state file", "error", err)
		}
	}

	s.logger.Info("session started", "session", sessionID)
	return sessionID, nil
}

// End ends the current recording session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := s.sessionRepo.End(s.sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			s.logger.Warn("failed to clear state file", "error", err)
		}
	}

	s.logger.Info("session ended", "session", s.sessionID, "moves", s.moveIndex)
	return nil
}

// Restart ends the current session and starts a new one with the same notes,
// for a puzzle reset to solved. The journal of a session always replays from
// solved, so moves made before a reset cannot share a session with moves
// made after it.
func (s *Session) Restart() (string, error) {
	if err := s.End(); err != nil {
		return "", err
	}

	s.mu.RLock()
	notes, appVersion, frames := s.notes, s.appVersion, s.frames
	s.mu.RUnlock()

	return s.Start(notes, "", appVersion, frames)
}

// RecordMove stores a committed move. It is a no-op when not recording.
func (s *Session) RecordMove(m tesseract.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, tsMs, m); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	s.moveIndex++
	return nil
}

// RecordMoves stores several moves committed at once, such as a scramble
// applied before play.
func (s *Session) RecordMoves(moves []tesseract.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording || len(moves) == 0 {
		return nil
	}

	tsMs := time.Since(s.startTime).Milliseconds()
	if err := s.moveRepo.CreateBatch(s.sessionID, moves, s.moveIndex, tsMs); err != nil {
		return fmt.Errorf("failed to store moves: %w", err)
	}
	s.moveIndex += len(moves)
	return nil
}

// Attach records every move sim commits. Storage failures are logged;
// they never interrupt the simulator.
func (s *Session) Attach(sim *tesseract.Simulator) {
	sim.OnCommit(func(m tesseract.Move) {
		if err := s.RecordMove(m); err != nil {
			s.logger.Warn("failed to journal move", "move", m.Notation(), "error", err)
		}
	})
}

// CloseInterrupted ends a session a previous run left open, as recorded in
// the state file. It returns the ID of the session it closed, or "".
func (s *Session) CloseInterrupted() (string, error) {
	if s.stateFile == nil || !s.stateFile.HasActiveSession() {
		return "", nil
	}

	id := s.stateFile.ActiveSessionID()
	session, err := s.sessionRepo.Get(id)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	if session != nil && session.EndedAt == nil {
		if err := s.sessionRepo.End(id); err != nil {
			return "", fmt.Errorf("failed to end session: %w", err)
		}
	}

	if err := s.stateFile.ClearActiveSession(); err != nil {
		return "", err
	}
	if session == nil {
		return "", nil
	}
	s.logger.Info("closed interrupted session", "session", id)
	return id, nil
}
