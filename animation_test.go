package tview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain runs queued updates the way the event loop would until done
// reports true.
func drain(t *testing.T, app *Application, done func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !done() {
		select {
		case update := <-app.updates:
			assert.True(t, update.draw)
			update.f()
		case <-deadline:
			t.Fatal("timed out waiting for queued updates")
		}
	}
}

func TestAnimate_ZeroDuration(t *testing.T) {
	app := NewApplication()
	var steps []float64
	completed := false

	app.Animate(0, func(p float64) { steps = append(steps, p) }, func() { completed = true })

	assert.Equal(t, []float64{1}, steps)
	assert.True(t, completed)

	// Nil callbacks are allowed.
	app.Animate(0, nil, nil)
}

func TestAnimate(t *testing.T) {
	app := NewApplication()
	var steps []float64
	completed := false

	app.Animate(100*time.Millisecond, func(p float64) { steps = append(steps, p) }, func() { completed = true })
	drain(t, app, func() bool { return completed })

	require.NotEmpty(t, steps)
	assert.Equal(t, 1.0, steps[len(steps)-1])
	for i := 1; i < len(steps); i++ {
		assert.GreaterOrEqual(t, steps[i], steps[i-1])
	}
}

func TestAnimate_StoppedApplication(t *testing.T) {
	app := NewApplication()
	app.Stop()

	completed := false
	app.Animate(10*time.Millisecond, nil, func() { completed = true })
	time.Sleep(50 * time.Millisecond)

	select {
	case <-app.updates:
		t.Fatal("update queued after stop")
	default:
	}
	assert.False(t, completed)
}

func TestAfterFunc(t *testing.T) {
	app := NewApplication()
	fired := false

	app.AfterFunc(10*time.Millisecond, func() { fired = true })
	drain(t, app, func() bool { return fired })

	stop := app.AfterFunc(time.Hour, func() {})
	assert.True(t, stop())
	assert.False(t, stop())
}

func TestPost_AfterStop(t *testing.T) {
	app := NewApplication()
	assert.True(t, app.post(queuedUpdate{f: func() {}}))

	app.Stop()
	app.Stop()
	assert.False(t, app.post(queuedUpdate{f: func() {}}))
}
