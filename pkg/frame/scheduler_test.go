package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsInRequestOrder(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	var got []int
	s.Request(func() { got = append(got, 1) })
	s.Request(func() { got = append(got, 2) })

	require.Equal(t, 2, s.Pending())
	require.Equal(t, 2, s.Tick())
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, uint64(1), s.Frame())
}

func TestSchedulerCallbacksAreOneShot(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	calls := 0
	s.Request(func() { calls++ })

	s.Tick()
	s.Tick()
	assert.Equal(t, 1, calls)
}

func TestSchedulerCancel(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	calls := 0
	id := s.Request(func() { calls++ })
	s.Cancel(id)
	s.Cancel(ID(999))

	assert.Equal(t, 0, s.Tick())
	assert.Equal(t, 0, calls)
}

func TestSchedulerRequestDuringTickWaitsForNextFrame(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	frames := 0
	var loop func()
	loop = func() {
		frames++
		s.Request(loop)
	}
	s.Request(loop)

	s.Tick()
	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, s.Pending())

	s.Tick()
	s.Tick()
	assert.Equal(t, 3, frames)
}

func TestSchedulerCancelDuringTick(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	secondRan := false
	var second ID
	s.Request(func() { s.Cancel(second) })
	second = s.Request(func() { secondRan = true })

	assert.Equal(t, 1, s.Tick())
	assert.False(t, secondRan)
}
