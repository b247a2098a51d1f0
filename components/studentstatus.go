package components

import (
	"github.com/vcrobe/nojs-classroom/runtime"
	"github.com/vcrobe/nojs-classroom/vdom"
)

// AdultAge is the first age rendered as an adult.
const AdultAge = 20

const (
	studentText = "학생입니다."
	adultText   = "성인입니다."
)

// StudentStatus picks one of two fixed lines depending on Age.
type StudentStatus struct {
	runtime.ComponentBase
	Age int `prop:"age"`
}

func (c *StudentStatus) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(StatusText(c.Age), nil)
}

// StatusText returns the student line for ages below AdultAge and the adult
// line otherwise.
func StatusText(age int) string {
	if age < AdultAge {
		return studentText
	}
	return adultText
}
