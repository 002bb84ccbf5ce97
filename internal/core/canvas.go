package core

import (
	"strconv"
	"strings"
)

// Attr is a single SVG attribute. Attributes are written in the order given.
type Attr struct {
	Name  string
	Value string
}

// A builds an attribute, formatting ints and floats the way the renderer
// expects: integers in decimal, floats in their shortest exact form.
func A(name string, value any) Attr {
	var v string
	switch x := value.(type) {
	case string:
		v = x
	case int:
		v = strconv.Itoa(x)
	case float64:
		v = FormatFloat(x)
	default:
		v = ""
	}
	return Attr{Name: name, Value: v}
}

// FormatFloat returns the shortest decimal string that round-trips to f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Canvas is an SVG document buffer. Elements are appended in paint order,
// so later elements are drawn on top of earlier ones.
type Canvas struct {
	width  int
	height int
	body   strings.Builder
}

// NewCanvas creates an empty canvas of the given size in user units.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.height
}

// Element appends a self-closing element.
func (c *Canvas) Element(name string, attrs ...Attr) {
	c.open(name, attrs)
	c.body.WriteString("/>\n")
}

// Rect appends a <rect>.
func (c *Canvas) Rect(attrs ...Attr) {
	c.Element("rect", attrs...)
}

// Line appends a <line>.
func (c *Canvas) Line(attrs ...Attr) {
	c.Element("line", attrs...)
}

// Text appends a <text> element with escaped character data.
func (c *Canvas) Text(text string, attrs ...Attr) {
	c.open("text", attrs)
	c.body.WriteByte('>')
	c.body.WriteString(textEscaper.Replace(text))
	c.body.WriteString("</text>\n")
}

func (c *Canvas) open(name string, attrs []Attr) {
	c.body.WriteString("    <")
	c.body.WriteString(name)
	for _, a := range attrs {
		c.body.WriteByte(' ')
		c.body.WriteString(a.Name)
		c.body.WriteString(`="`)
		c.body.WriteString(attrEscaper.Replace(a.Value))
		c.body.WriteByte('"')
	}
}

// String returns the complete SVG document.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.body.Len() + 96)
	sb.WriteString(`<svg width="`)
	sb.WriteString(strconv.Itoa(c.width))
	sb.WriteString(`" height="`)
	sb.WriteString(strconv.Itoa(c.height))
	sb.WriteString(`" xmlns="http://www.w3.org/2000/svg">`)
	sb.WriteByte('\n')
	sb.WriteString(c.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

// Bytes returns the complete SVG document.
func (c *Canvas) Bytes() []byte {
	return []byte(c.String())
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)
