package components

import (
	"fmt"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// ProfileCard shows a student's profile and a like counter.
type ProfileCard struct {
	runtime.ComponentBase
	Name      string `prop:"name"`
	StudentID string `prop:"studentId"`
	Major     string `prop:"major"`

	likeCount *runtime.State[int]
}

func (c *ProfileCard) OnInit() {
	c.likeCount = runtime.NewState(&c.ComponentBase, "likeCount", 0)
}

// HandleLike adds one like.
func (c *ProfileCard) HandleLike() {
	c.likeCount.Set(c.likeCount.Get() + 1)
}

// LikeCount returns the number of likes so far.
func (c *ProfileCard) LikeCount() int {
	return c.likeCount.Get()
}

func (c *ProfileCard) ApplyProps(next runtime.Component) {
	if p, ok := next.(*ProfileCard); ok {
		c.Name, c.StudentID, c.Major = p.Name, p.StudentID, p.Major
	}
}

func (c *ProfileCard) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"className": "profile-card"},
		vdom.Img("profile.jpg", "프로필 이미지"),
		vdom.H1(c.Name, nil),
		vdom.Paragraph("학번: "+c.StudentID, nil),
		vdom.Paragraph("전공: "+c.Major, nil),
		vdom.Paragraph(fmt.Sprintf("안녕하세요! 컴포넌트를 배우고 있는 %s입니다.", c.Name), nil),
		vdom.Button("좋아요", map[string]any{"onClick": c.HandleLike}),
		vdom.Paragraph(LikeText(c.likeCount.Get()), map[string]any{"style": "text-align: right"}),
	)
}

// LikeText formats the like counter line.
func LikeText(n int) string {
	return fmt.Sprintf("좋아요 %d개", n)
}

// ProfileApp hosts a ProfileCard with fixed props.
type ProfileApp struct {
	runtime.ComponentBase
}

func (c *ProfileApp) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		r.RenderChild("profile-card", &ProfileCard{
			Name:      "강우성",
			StudentID: "2022108129",
			Major:     "인공지능학과",
		}),
	)
}
