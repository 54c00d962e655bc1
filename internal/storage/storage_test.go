package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-r-m/twisty-tesseract"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrationsReachLatestVersion(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)

	// Re-running is a no-op.
	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), v)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("", "0wxy 1zyx", "test", 30)
	require.NoError(t, err)

	s, err := sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Nil(t, s.EndedAt)
	assert.Nil(t, s.Notes)
	require.NotNil(t, s.ScrambleText)
	assert.Equal(t, "0wxy 1zyx", *s.ScrambleText)
	require.NotNil(t, s.AnimationFrames)
	assert.Equal(t, 30, *s.AnimationFrames)

	require.NoError(t, sessions.End(id))
	s, err = sessions.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s.EndedAt)
	require.NotNil(t, s.DurationMs)
	assert.GreaterOrEqual(t, *s.DurationMs, int64(0))
}

func TestGetMissingSession(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	s, err := sessions.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = sessions.GetLast()
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.Error(t, sessions.End("nope"))
}

func TestListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	var ids []string
	for range 3 {
		id, err := sessions.Create("", "", "", 1)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := sessions.List(10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[2], list[0].SessionID)
	assert.Equal(t, ids[0], list[2].SessionID)

	last, err := sessions.GetLast()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last.SessionID)

	n, err := sessions.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMovesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "", "", 30)
	require.NoError(t, err)

	seq := tesseract.ParseMoves("0wxy 3zyx 2xwz")
	_, err = moves.Create(id, 0, 10, seq[0])
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, seq[1:], 1, 20))

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "3zyx", records[1].Notation)
	assert.Equal(t, 3, records[1].Layer)
	assert.Equal(t, int64(20), records[2].TsMs)
	assert.Equal(t, seq, Moves(records))

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDuplicateMoveIndexRollsBackBatch(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create("", "", "", 30)
	require.NoError(t, err)

	moves := NewMoveRepository(db)
	seq := tesseract.ParseMoves("0wxy 0wyx")
	_, err = moves.Create(id, 1, 0, seq[0])
	require.NoError(t, err)

	assert.Error(t, moves.CreateBatch(id, seq, 0, 0))
	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteCascadesToMoves(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "", "", 30)
	require.NoError(t, err)
	_, err = moves.Create(id, 0, 0, tesseract.OuterW)
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(id))
	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
