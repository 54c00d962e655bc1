package tesseract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimatorIdleTickIsNoOp(t *testing.T) {
	a := NewAnimator(AnimationFrames)
	_, done := a.Tick()
	assert.False(t, done)
	_, counter, ok := a.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, counter)
}

func TestAnimatorCommitsAfterFullCycle(t *testing.T) {
	a := NewAnimator(AnimationFrames)
	a.Enqueue(OuterW)
	for i := 1; i < AnimationFrames; i++ {
		_, done := a.Tick()
		require.False(t, done, "tick %d", i)
		m, counter, ok := a.Current()
		require.True(t, ok)
		assert.Equal(t, OuterW, m)
		assert.Equal(t, i, counter)
	}
	m, done := a.Tick()
	assert.True(t, done)
	assert.Equal(t, OuterW, m)
	assert.True(t, a.Idle())
}

func TestAnimatorRunsMovesSequentially(t *testing.T) {
	a := NewAnimator(3)
	a.Enqueue(OuterW)
	a.Enqueue(InnerW)
	assert.Equal(t, 2, a.Pending())

	var committed []Move
	for i := 0; i < 6; i++ {
		if m, done := a.Tick(); done {
			committed = append(committed, m)
		}
		if i == 2 {
			// The second move starts from frame zero.
			m, counter, ok := a.Current()
			require.True(t, ok)
			assert.Equal(t, InnerW, m)
			assert.Equal(t, 0, counter)
		}
	}
	assert.Equal(t, []Move{OuterW, InnerW}, committed)
	assert.True(t, a.Idle())
}

func TestAnimatorSingleFrame(t *testing.T) {
	a := NewAnimator(0)
	assert.Equal(t, 1, a.Frames())
	a.Enqueue(OuterW)
	_, done := a.Tick()
	assert.True(t, done)
}

func TestAnimatorClear(t *testing.T) {
	a := NewAnimator(5)
	a.Enqueue(OuterW)
	a.Tick()
	a.Clear()
	assert.True(t, a.Idle())
	a.Enqueue(InnerW)
	_, counter, _ := a.Current()
	assert.Equal(t, 0, counter)
}
