package encode

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/WJJJ2004/motion-editor/ir"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	FieldColor
	ValueColor
	NumberColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[HeaderColor] = color.New(color.FgGreen, color.Bold).SprintfFunc()
	colors.Map[FieldColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NumberColor] = color.RGB(128, 216, 236).SprintfFunc()
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// Fprint writes a human-readable dump of one frame. Diagnostic output only,
// the layout is not a contract.
func Fprint(w io.Writer, f *ir.Frame, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	col := es.Color
	if col == nil {
		col = func(_ ColorAttr, s string) string { return s }
	}
	var err error
	pr := func(attr ColorAttr, format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprint(w, col(attr, fmt.Sprintf(format, args...)))
	}
	pr(HeaderColor, "frame\n")
	pr(ValueColor, "------------------------------------\n")
	pr(FieldColor, "name         : ")
	pr(ValueColor, "%s\n", f.Name)
	pr(FieldColor, "time         : ")
	pr(NumberColor, "%d\n", f.Time)
	pr(FieldColor, "delay        : ")
	pr(NumberColor, "%d\n", f.Delay)
	pr(FieldColor, "repeat       : ")
	pr(NumberColor, "%d\n", f.Repeat)
	pr(FieldColor, "selected     : ")
	pr(ValueColor, "%t\n", f.Selected)
	pr(FieldColor, "dxl entries  :\n")
	for i := range f.Dxl {
		jv := &f.Dxl[i]
		pr(FieldColor, "  - id: ")
		pr(NumberColor, "%d", jv.ID)
		pr(FieldColor, "  pos(rad): ")
		pr(NumberColor, "%g\n", jv.Position)
	}
	pr(ValueColor, "------------------------------------\n")
	return err
}
