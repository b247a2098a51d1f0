package components

import (
	"fmt"

	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// UserProfile keeps three independent slots: a name bound to a text input,
// an age and a student flag.
type UserProfile struct {
	runtime.ComponentBase

	name      *runtime.State[string]
	age       *runtime.State[int]
	isStudent *runtime.State[bool]
}

func (c *UserProfile) OnInit() {
	c.name = runtime.NewState(&c.ComponentBase, "name", "")
	c.age = runtime.NewState(&c.ComponentBase, "age", 20)
	c.isStudent = runtime.NewState(&c.ComponentBase, "isStudent", true)
}

// ChangeName replaces the name with the input value.
func (c *UserProfile) ChangeName(value string) {
	c.name.Set(value)
}

// IncreaseAge adds one year.
func (c *UserProfile) IncreaseAge() {
	c.age.Set(c.age.Get() + 1)
}

// ToggleStudent flips the student flag.
func (c *UserProfile) ToggleStudent() {
	c.isStudent.Set(!c.isStudent.Get())
}

func (c *UserProfile) Name() string    { return c.name.Get() }
func (c *UserProfile) Age() int        { return c.age.Get() }
func (c *UserProfile) IsStudent() bool { return c.isStudent.Get() }

func (c *UserProfile) Render(r runtime.Renderer) *vdom.VNode {
	student := "아니오"
	if c.isStudent.Get() {
		student = "예"
	}
	return vdom.Div(nil,
		vdom.InputText(c.name.Get(), map[string]any{"onChange": c.ChangeName}),
		vdom.Button("나이증가", map[string]any{"onClick": c.IncreaseAge}),
		vdom.Button("학생여부전환", map[string]any{"onClick": c.ToggleStudent}),
		vdom.Paragraph("이름: "+c.name.Get(), nil),
		vdom.Paragraph(fmt.Sprintf("나이: %d", c.age.Get()), nil),
		vdom.Paragraph("학생: "+student, nil),
	)
}
