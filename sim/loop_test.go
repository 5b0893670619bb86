package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameLoopRunStopsAfterMaxTicks(t *testing.T) {
	w := newTestWorld(t)
	loop := NewGameLoop(w, 1000)

	var seen []int
	loop.OnTick = func(s Snapshot) { seen = append(seen, s.Tick) }
	loop.Run(3)

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestGameLoopStop(t *testing.T) {
	w := newTestWorld(t)
	loop := NewGameLoop(w, 1000)

	done := make(chan struct{})
	go func() {
		loop.Run(0)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopRunFast(t *testing.T) {
	w := newTestWorld(t)
	loop := NewGameLoop(w, 60)

	assert.Equal(t, 10, loop.RunFast(10))
	assert.Equal(t, 10, w.Snapshot().Tick)
}

func TestGameLoopRunFastHonoursStop(t *testing.T) {
	w := newTestWorld(t)
	loop := NewGameLoop(w, 60)
	loop.OnTick = func(s Snapshot) {
		if s.Tick == 5 {
			loop.Stop()
		}
	}

	ran := loop.RunFast(3000)

	assert.Equal(t, 5, ran)
	assert.Equal(t, 5, w.Snapshot().Tick)
}

func TestGameLoopRunFastAfterStopDoesNothing(t *testing.T) {
	w := newTestWorld(t)
	loop := NewGameLoop(w, 60)
	loop.Stop()

	assert.Zero(t, loop.RunFast(100))
	assert.Zero(t, w.Snapshot().Tick)
}

func TestGameLoopStopTwice(t *testing.T) {
	loop := NewGameLoop(newTestWorld(t), 60)
	assert.NotPanics(t, func() {
		loop.Stop()
		loop.Stop()
	})
}
