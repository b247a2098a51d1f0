package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vcrobe/nojs-classroom/surface"
)

const (
	writeWait = 10 * time.Second
	readLimit = 64 * 1024
)

// liveMessage is sent to websocket clients.
type liveMessage struct {
	Type    string `json:"type"` // "frame" or "error"
	Version uint64 `json:"version,omitempty"`
	HTML    string `json:"html,omitempty"`
	Error   string `json:"error,omitempty"`
}

func frameMessage(f surface.Frame) liveMessage {
	return liveMessage{Type: "frame", Version: f.Version, HTML: f.HTML}
}

// handleLive streams every new frame of the session to the client and
// dispatches events the client sends as {"target","type","value"} objects.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "session", sess.name, "error", err)
		return
	}
	defer conn.Close()

	frames, stop := sess.html.Subscribe()
	defer stop()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	// Only this goroutine writes; the reader reports failures through errs.
	errs := make(chan string, 8)
	go s.readLive(ctx, cancel, conn, sess, errs)

	write := func(m liveMessage) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(m)
	}
	if err := write(frameMessage(sess.html.Current())); err != nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case f := <-frames:
			if err := write(frameMessage(f)); err != nil {
				return
			}
		case msg := <-errs:
			if err := write(liveMessage{Type: "error", Error: msg}); err != nil {
				return
			}
		}
	}
}

func (s *Server) readLive(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sess *session, errs chan<- string) {
	defer cancel()
	conn.SetReadLimit(readLimit)
	for {
		var req eventRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !errors.Is(err, context.Canceled) {
				s.logger.Debug("websocket read ended", "session", sess.name, "error", err)
			}
			return
		}
		ev, err := req.event()
		if err == nil {
			err = sess.loop.Dispatch(ctx, ev)
		}
		if err != nil {
			select {
			case errs <- err.Error():
			default:
			}
		}
	}
}
