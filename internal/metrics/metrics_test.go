package metrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/internal/logging"
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestObserver_CountsEngineActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	require.NoError(t, err)

	e := runtime.NewEngine(runtime.WithObserver(obs), runtime.WithLogger(logging.NewNop()))
	e.Mount(&components.ProfileCard{Name: "강우성"})
	p, _ := vdom.FindButton(e.Tree(), "좋아요")

	require.NoError(t, e.Dispatch(runtime.Click(p)))
	require.NoError(t, e.Dispatch(runtime.Click(p)))
	require.Error(t, e.Dispatch(runtime.Click(vdom.Path{42})))

	out := scrape(t, reg)
	assert.Contains(t, out, `nojs_renders_total{component="*components.ProfileCard"} 3`)
	assert.Contains(t, out, `nojs_patches_total{component="*components.ProfileCard"} 2`)
	assert.Contains(t, out, `nojs_events_total{result="ok",type="click"} 2`)
	assert.Contains(t, out, `nojs_events_total{result="no_target",type="click"} 1`)
	assert.Contains(t, out, `nojs_state_updates_total{slot="likeCount"} 2`)
	assert.Contains(t, out, `nojs_render_duration_seconds_count{component="*components.ProfileCard"} 3`)
}

func TestObserver_UnknownEventTypesShareOneSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	require.NoError(t, err)

	e := runtime.NewEngine(runtime.WithObserver(obs), runtime.WithLogger(logging.NewNop()))
	e.Mount(&components.ProfileCard{Name: "강우성"})
	p, _ := vdom.FindButton(e.Tree(), "좋아요")

	for i := 0; i < 50; i++ {
		ev := runtime.Event{Target: p, Type: fmt.Sprintf("x%d", i)}
		require.ErrorIs(t, e.Dispatch(ev), runtime.ErrNoHandler)
	}

	out := scrape(t, reg)
	assert.Contains(t, out, `nojs_events_total{result="no_handler",type="other"} 50`)
	assert.Equal(t, 1, strings.Count(out, "nojs_events_total{"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
