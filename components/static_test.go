package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-classroom/testcomponents"
	"github.com/vcrobe/nojs-classroom/vdom"
)

func TestStudentStatus_Boundary(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{age: -1, want: "학생입니다."},
		{age: 17, want: "학생입니다."},
		{age: 19, want: "학생입니다."},
		{age: 20, want: "성인입니다."},
		{age: 21, want: "성인입니다."},
	}
	for _, tt := range tests {
		renderer := testcomponents.NewTestRenderer(&StudentStatus{Age: tt.age})
		vnode := renderer.RenderRoot()
		assert.Equal(t, "p", vnode.Tag)
		assert.Equal(t, tt.want, vnode.Content, "age %d", tt.age)
	}
}

func TestSum(t *testing.T) {
	vnode := testcomponents.NewTestRenderer(&Sum{A: 3, B: 5}).RenderRoot()
	assert.Equal(t, "3+5=8", vnode.Content)
}

func TestHelloAndWelcome(t *testing.T) {
	hello := testcomponents.NewTestRenderer(&Hello{Name: "홍길동"}).RenderRoot()
	require.Len(t, hello.Children, 1)
	assert.Equal(t, "h1", hello.Children[0].Tag)
	assert.Equal(t, "안녕하세요, 홍길동!", hello.Children[0].Content)

	welcome := testcomponents.NewTestRenderer(&Welcome{Name: "철수"}).RenderRoot()
	assert.Equal(t, "h1", welcome.Tag)
	assert.Equal(t, "hello, 철수!", welcome.Content)
}

func TestGreetingApp_RendersBothChildren(t *testing.T) {
	vnode := testcomponents.NewTestRenderer(&GreetingApp{}).RenderRoot()

	require.Len(t, vnode.Children, 2)
	assert.Equal(t, "안녕하세요, 홍길동님!", vnode.Children[0].Children[0].Content)
	assert.Equal(t, "나이 : 20세", vnode.Children[0].Children[1].Content)
	assert.Equal(t, "안녕하세요, 김철수님!", vnode.Children[1].Children[0].Content)
	assert.Equal(t, "나이 : 25세", vnode.Children[1].Children[1].Content)
}

func TestGreeting_ApplyProps(t *testing.T) {
	g := &Greeting{Name: "홍길동", Age: 20}
	g.ApplyProps(&Greeting{Name: "김철수", Age: 25})
	assert.Equal(t, "김철수", g.Name)
	assert.Equal(t, 25, g.Age)
}

// TestWrapper_PassesChildrenThrough verifies the children are placed verbatim.
func TestWrapper_PassesChildrenThrough(t *testing.T) {
	children := []*vdom.VNode{
		vdom.Paragraph("안의 내용", nil),
		vdom.Button("button", nil),
	}
	vnode := testcomponents.NewTestRenderer(&Wrapper{Children: children}).RenderRoot()

	assert.Equal(t, "Wrapper", vnode.Attr("className"))
	require.Len(t, vnode.Children, 2)
	assert.Same(t, children[0], vnode.Children[0])
	assert.Same(t, children[1], vnode.Children[1])
}

func TestWrapperDemo(t *testing.T) {
	vnode := testcomponents.NewTestRenderer(&WrapperDemo{}).RenderRoot()

	assert.Equal(t, "div", vnode.Tag)
	require.Len(t, vnode.Children, 2)
	assert.Equal(t, "안의 내용", vnode.Children[0].Content)
	assert.Equal(t, "button", vnode.Children[1].Tag)
}
