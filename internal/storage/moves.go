package storage

import (
	"database/sql"
	"fmt"

	"github.com/aditya-r-m/twisty-tesseract"
)

// MoveRecord represents a committed move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Notation  string
	Layer     int
}

// Move parses the stored notation.
func (m MoveRecord) Move() (tesseract.Move, error) {
	return tesseract.ParseMove(m.Notation)
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create stores a move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move tesseract.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, notation, layer)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, moveIndex, tsMs, move.Notation(), int(move.Layer))

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch stores several moves in a single transaction. All of them
// carry the timestamp tsMs.
func (r *MoveRepository) CreateBatch(sessionID string, moves []tesseract.Move, startIndex int, tsMs int64) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, notation, layer)
				VALUES (?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, tsMs, move.Notation(), int(move.Layer))
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, notation, layer
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Notation, &m.Layer)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves in a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Moves converts records back to moves, skipping any that no longer parse.
func Moves(records []MoveRecord) []tesseract.Move {
	moves := make([]tesseract.Move, 0, len(records))
	for _, rec := range records {
		m, err := rec.Move()
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}
