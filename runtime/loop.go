package runtime

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrLoopStopped is returned by Do once the loop has exited.
	ErrLoopStopped = errors.New("loop stopped")
	// ErrPanicked is returned by Do when the job panicked.
	ErrPanicked = errors.New("job panicked")
)

// Loop owns an Engine on a single goroutine. Work submitted with Do from any
// goroutine is executed there in arrival order, one job at a time, which keeps
// the engine's one-event-at-a-time contract for concurrent callers.
type Loop struct {
	engine *Engine
	work   chan job
	done   chan struct{}
}

type job struct {
	fn    func(*Engine) error
	reply chan error
}

// NewLoop wraps e. queueSize bounds the number of pending jobs; values < 1
// default to 64.
func NewLoop(e *Engine, queueSize int) *Loop {
	if queueSize < 1 {
		queueSize = 64
	}
	return &Loop{
		engine: e,
		work:   make(chan job, queueSize),
		done:   make(chan struct{}),
	}
}

// Run processes jobs until ctx is canceled. It returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case j := <-l.work:
			j.reply <- l.run(j)
		}
	}
}

// run executes one job. A panic in a handler or a Render is logged and
// returned as the job's error; the engine drops its queued events so the
// next job starts clean.
func (l *Loop) run(j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.engine.abort()
			l.engine.logger.Error("loop job panicked", "component", l.engine.rootName, "panic", rec)
			err = fmt.Errorf("%w: %v", ErrPanicked, rec)
		}
	}()
	return j.fn(l.engine)
}

// Do runs fn on the loop goroutine and waits for its result.
func (l *Loop) Do(ctx context.Context, fn func(*Engine) error) error {
	j := job{fn: fn, reply: make(chan error, 1)}
	select {
	case l.work <- j:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-j.reply:
		return err
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch is shorthand for running Engine.Dispatch on the loop.
func (l *Loop) Dispatch(ctx context.Context, ev Event) error {
	return l.Do(ctx, func(e *Engine) error { return e.Dispatch(ev) })
}
