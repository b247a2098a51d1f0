package server

import (
	"context"
	"errors"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/surface"
)

// session is one mounted component shared by every client of its page.
type session struct {
	name string
	loop *runtime.Loop
	html *surface.HTML
}

// session returns the running session for name, creating and mounting it on
// first use. The component is mounted before its loop starts, so no lock is
// held while waiting on a loop.
func (s *Server) session(name string) (*session, error) {
	s.mu.Lock()
	sess, ok := s.sessions[name]
	s.mu.Unlock()
	if ok {
		return sess, nil
	}

	comp, err := s.registry.New(name, nil)
	if err != nil {
		return nil, err
	}

	sess = &session{name: name, html: surface.NewHTML()}
	opts := []runtime.Option{
		runtime.WithSurface(sess.html),
		runtime.WithLogger(s.logger.With("session", name)),
	}
	if s.observer != nil {
		opts = append(opts, runtime.WithObserver(s.observer))
	}
	engine := runtime.NewEngine(opts...)
	engine.Mount(comp)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[name]; ok {
		// Another request won the race; drop the unstarted engine.
		return existing, nil
	}
	if s.ctx.Err() != nil {
		return nil, runtime.ErrLoopStopped
	}

	sess.loop = runtime.NewLoop(engine, 0)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := sess.loop.Run(s.ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("session loop stopped", "session", name, "error", err)
		}
	}()
	s.sessions[name] = sess
	s.logger.Info("session started", "session", name)
	return sess, nil
}

// reset mounts a fresh instance of the session's component.
func (s *Server) reset(ctx context.Context, sess *session) error {
	comp, err := s.registry.New(sess.name, nil)
	if err != nil {
		return err
	}
	return sess.loop.Do(ctx, func(e *runtime.Engine) error {
		e.Mount(comp)
		return nil
	})
}
