package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// VersionHeader carries the frame version of an event response.
const VersionHeader = "X-Nojs-Version"

type eventRequest struct {
	Target string `json:"target"`
	Type   string `json:"type"`
	Value  string `json:"value"`
}

func (req eventRequest) event() (runtime.Event, error) {
	p, err := vdom.ParsePath(req.Target)
	if err != nil {
		return runtime.Event{}, err
	}
	ev := runtime.Event{Target: p, Type: req.Type, Value: req.Value}
	if ev.Type == "" {
		ev.Type = "click"
	}
	return ev, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var items []*vdom.VNode
	for _, e := range s.registry.Entries() {
		link := vdom.NewVNode("a", map[string]any{"href": "/c/" + e.Name + "/"}, nil, e.Name)
		items = append(items, vdom.NewVNode("li", nil, []*vdom.VNode{link, vdom.Text(" " + e.Description)}, ""))
	}
	body := vdom.Div(nil, vdom.H1("nojs classroom", nil), vdom.Ul(nil, items...))
	s.writePage(w, "index.html", map[string]any{"Body": template.HTML(vdom.HTMLString(body))})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	f := sess.html.Current()
	s.writePage(w, "page.html", map[string]any{
		"Title":   sess.name,
		"Name":    sess.name,
		"Version": f.Version,
		"Body":    template.HTML(f.HTML),
	})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	req, err := decodeEvent(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev, err := req.event()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := sess.loop.Dispatch(r.Context(), ev); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.writeFragment(w, sess)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := s.reset(r.Context(), sess); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	s.writeFragment(w, sess)
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, err := s.session(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return nil, false
	}
	return sess, true
}

func (s *Server) writeFragment(w http.ResponseWriter, sess *session) {
	f := sess.html.Current()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set(VersionHeader, strconv.FormatUint(f.Version, 10))
	w.Write([]byte(f.HTML))
}

func (s *Server) writePage(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("page template failed", "template", name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// decodeEvent accepts a JSON body or form fields target, type and value.
func decodeEvent(r *http.Request) (eventRequest, error) {
	var req eventRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errors.New("invalid request body")
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, errors.New("invalid form")
	}
	req.Target = r.PostForm.Get("target")
	req.Type = r.PostForm.Get("type")
	req.Value = r.PostForm.Get("value")
	return req, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, components.ErrUnknownComponent):
		return http.StatusNotFound
	case errors.Is(err, runtime.ErrNoTarget), errors.Is(err, runtime.ErrNoHandler):
		return http.StatusUnprocessableEntity
	case errors.Is(err, runtime.ErrLoopStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
