package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-classroom/testcomponents"
	"github.com/vcrobe/nojs-classroom/vdom"
)

func TestUserProfile_InitialState(t *testing.T) {
	profile := &UserProfile{}
	renderer := testcomponents.NewTestRenderer(profile)

	vnode := renderer.RenderRoot()

	assert.Equal(t, "", profile.Name())
	assert.Equal(t, 20, profile.Age())
	assert.True(t, profile.IsStudent())

	require.Len(t, vnode.Children, 6)
	input := vnode.Children[0]
	assert.Equal(t, "input", input.Tag)
	assert.Equal(t, "", input.Content)
	assert.Equal(t, []string{"change"}, input.EventNames())
	assert.Equal(t, "나이: 20", vnode.Children[4].Content)
	assert.Equal(t, "학생: 예", vnode.Children[5].Content)
}

func TestUserProfile_ChangeNameFromInput(t *testing.T) {
	profile := &UserProfile{}
	renderer := testcomponents.NewTestRenderer(profile)
	renderer.RenderRoot()

	require.True(t, renderer.Fire(vdom.Path{0}, "change", "홍길동"))

	vnode := renderer.GetCurrentVDOM()
	assert.Equal(t, "홍길동", profile.Name())
	assert.Equal(t, "홍길동", vnode.Children[0].Content)
	assert.Equal(t, "이름: 홍길동", vnode.Children[3].Content)
}

func TestUserProfile_IncreaseAge(t *testing.T) {
	profile := &UserProfile{}
	renderer := testcomponents.NewTestRenderer(profile)
	renderer.RenderRoot()

	require.True(t, renderer.ClickButton("나이증가"))
	require.True(t, renderer.ClickButton("나이증가"))

	assert.Equal(t, 22, profile.Age())
	assert.Equal(t, "나이: 22", renderer.GetCurrentVDOM().Children[4].Content)
}

// TestUserProfile_ToggleIsInvolution verifies toggling twice restores the flag.
func TestUserProfile_ToggleIsInvolution(t *testing.T) {
	profile := &UserProfile{}
	renderer := testcomponents.NewTestRenderer(profile)
	renderer.RenderRoot()

	for _, start := range []bool{true, false} {
		if profile.IsStudent() != start {
			profile.ToggleStudent()
		}
		profile.ToggleStudent()
		assert.Equal(t, !start, profile.IsStudent())
		profile.ToggleStudent()
		assert.Equal(t, start, profile.IsStudent())
	}
}

// TestUserProfile_HandlersTouchOneSlot verifies each handler changes only its own slot.
func TestUserProfile_HandlersTouchOneSlot(t *testing.T) {
	profile := &UserProfile{}
	renderer := testcomponents.NewTestRenderer(profile)
	renderer.RenderRoot()

	profile.ToggleStudent()
	profile.IncreaseAge()
	profile.ChangeName("김철수")

	updates := renderer.Updates()
	require.Len(t, updates, 3)
	assert.Equal(t, "isStudent", updates[0].Slot)
	assert.Equal(t, false, updates[0].Value)
	assert.Equal(t, "age", updates[1].Slot)
	assert.Equal(t, 21, updates[1].Value)
	assert.Equal(t, "name", updates[2].Slot)
	assert.Equal(t, "김철수", updates[2].Value)
}
