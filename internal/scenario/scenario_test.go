package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-classroom/components"
	"github.com/vcrobe/nojs-classroom/internal/logging"
	"github.com/vcrobe/nojs-classroom/runtime"
)

func newEngine() *runtime.Engine {
	return runtime.NewEngine(runtime.WithLogger(logging.NewNop()))
}

func TestRun_ProfileLikes(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "profile_likes.yaml"))
	require.NoError(t, err)

	res, err := Run(newEngine(), components.DefaultRegistry(), s)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Events)
	assert.Equal(t, 4, res.Renders)
}

func TestRun_UserProfile(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "user_profile.yaml"))
	require.NoError(t, err)

	res, err := Run(newEngine(), components.DefaultRegistry(), s)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Events)
	assert.Equal(t, "철수", res.Tree.Children[0].Content)
}

func TestRun_FailedExpectation(t *testing.T) {
	s, err := Parse([]byte("component: profile-card\nevents:\n  - button: 좋아요\nexpect:\n  - 좋아요 2개\n"))
	require.NoError(t, err)

	_, err = Run(newEngine(), components.DefaultRegistry(), s)
	assert.ErrorIs(t, err, ErrExpectation)
}

func TestRun_MissingButton(t *testing.T) {
	s, err := Parse([]byte("component: sum\nevents:\n  - button: 좋아요\n"))
	require.NoError(t, err)

	_, err = Run(newEngine(), components.DefaultRegistry(), s)
	assert.ErrorIs(t, err, runtime.ErrNoTarget)
}

func TestRun_UnknownComponent(t *testing.T) {
	_, err := Run(newEngine(), components.DefaultRegistry(), Scenario{Component: "clock"})
	assert.ErrorIs(t, err, components.ErrUnknownComponent)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("events: []\n"))
	assert.ErrorIs(t, err, ErrNoComponent)

	_, err = Parse([]byte("component: sum\nevents:\n  - type: click\n"))
	assert.ErrorIs(t, err, ErrBadStep)

	_, err = Parse([]byte("component: sum\nevents:\n  - target: \"0\"\n    button: x\n"))
	assert.ErrorIs(t, err, ErrBadStep)

	_, err = Parse([]byte("component: [\n"))
	assert.Error(t, err)
}

func TestRun_BadTargetPath(t *testing.T) {
	s, err := Parse([]byte("component: color-text\nevents:\n  - target: \"x.1\"\n"))
	require.NoError(t, err)

	_, err = Run(newEngine(), components.DefaultRegistry(), s)
	assert.ErrorIs(t, err, ErrBadStep)
}
