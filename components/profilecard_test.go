package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/testcomponents"
	"github.com/vcrobe/nojs-classroom/vdom"
)

func likeLine(t *testing.T, root *vdom.VNode) *vdom.VNode {
	t.Helper()
	require.NotEmpty(t, root.Children)
	return root.Children[len(root.Children)-1]
}

func newCard() *ProfileCard {
	return &ProfileCard{Name: "강우성", StudentID: "2022108129", Major: "인공지능학과"}
}

func TestProfileCard_InitialRender(t *testing.T) {
	renderer := testcomponents.NewTestRenderer(newCard())

	vnode := renderer.RenderRoot()

	assert.Equal(t, "profile-card", vnode.Attr("className"))
	require.Len(t, vnode.Children, 7)
	assert.Equal(t, "img", vnode.Children[0].Tag)
	assert.Equal(t, "프로필 이미지", vnode.Children[0].Attr("alt"))
	assert.Equal(t, "강우성", vnode.Children[1].Content)
	assert.Equal(t, "학번: 2022108129", vnode.Children[2].Content)
	assert.Equal(t, "전공: 인공지능학과", vnode.Children[3].Content)
	assert.Equal(t, "안녕하세요! 컴포넌트를 배우고 있는 강우성입니다.", vnode.Children[4].Content)
	assert.Equal(t, "좋아요", vnode.Children[5].Content)

	line := likeLine(t, vnode)
	assert.Equal(t, "좋아요 0개", line.Content)
	assert.Equal(t, "text-align: right", line.Attr("style"))
}

// TestProfileCard_ThreeLikes fires the like button three times through the
// rendered tree.
func TestProfileCard_ThreeLikes(t *testing.T) {
	card := newCard()
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()

	for i := 0; i < 3; i++ {
		require.True(t, renderer.ClickButton("좋아요"))
	}

	assert.Equal(t, "좋아요 3개", likeLine(t, renderer.GetCurrentVDOM()).Content)
	assert.Equal(t, 3, card.LikeCount())
}

func TestProfileCard_IncrementAddsK(t *testing.T) {
	for _, k := range []int{0, 1, 7, 100} {
		card := newCard()
		renderer := testcomponents.NewTestRenderer(card)
		renderer.RenderRoot()
		start := card.LikeCount()

		for i := 0; i < k; i++ {
			card.HandleLike()
		}

		assert.Equal(t, start+k, card.LikeCount())
		assert.Equal(t, LikeText(start+k), likeLine(t, renderer.GetCurrentVDOM()).Content)
	}
}

// TestProfileCard_EachLikeRequestsOneUpdate verifies the slot identifier and
// value passed to the renderer, one update and one render per like.
func TestProfileCard_EachLikeRequestsOneUpdate(t *testing.T) {
	card := newCard()
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()

	card.HandleLike()
	card.HandleLike()

	assert.Equal(t, []runtime.Update{
		{Slot: "likeCount", Value: 1},
		{Slot: "likeCount", Value: 2},
	}, renderer.Updates())
	assert.Equal(t, 3, renderer.Renders())
}

func TestProfileCard_RenderIsDeterministic(t *testing.T) {
	card := newCard()
	renderer := testcomponents.NewTestRenderer(card)
	renderer.RenderRoot()

	first := card.Render(renderer)
	second := card.Render(renderer)

	assert.True(t, vdom.Equal(first, second))
	assert.Empty(t, renderer.Updates(), "render must not change state")
}

func TestProfileApp_KeepsCardStateAcrossRenders(t *testing.T) {
	app := &ProfileApp{}
	renderer := testcomponents.NewTestRenderer(app)
	renderer.RenderRoot()

	require.True(t, renderer.ClickButton("좋아요"))
	require.True(t, renderer.ClickButton("좋아요"))

	card, ok := renderer.Child("profile-card").(*ProfileCard)
	require.True(t, ok)
	assert.Equal(t, 2, card.LikeCount())
	assert.Equal(t, "좋아요 2개", likeLine(t, renderer.GetCurrentVDOM().Children[0]).Content)
}
