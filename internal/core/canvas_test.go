package core

import (
	"strings"
	"testing"
)

func TestCanvasEmpty(t *testing.T) {
	c := NewCanvas(400, 300)

	expected := "<svg width=\"400\" height=\"300\" xmlns=\"http://www.w3.org/2000/svg\">\n</svg>"
	if got := c.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if c.Width() != 400 || c.Height() != 300 {
		t.Errorf("size = %dx%d, expected 400x300", c.Width(), c.Height())
	}
}

func TestCanvasElementOrder(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Rect(A("width", 10), A("height", 10), A("fill", "#000"))
	c.Line(A("x1", 0), A("y1", 0), A("x2", 10), A("y2", 10), A("opacity", 0.1))
	c.Text("hi", A("x", 1), A("y", 2))

	lines := strings.Split(c.String(), "\n")
	expected := []string{
		`<svg width="10" height="10" xmlns="http://www.w3.org/2000/svg">`,
		`    <rect width="10" height="10" fill="#000"/>`,
		`    <line x1="0" y1="0" x2="10" y2="10" opacity="0.1"/>`,
		`    <text x="1" y="2">hi</text>`,
		`</svg>`,
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %d lines, expected %d:\n%s", len(lines), len(expected), c.String())
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestCanvasEscaping(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Text("a<b & c>", A("fill", `x"y`))

	out := c.String()
	if !strings.Contains(out, `fill="x&quot;y"`) {
		t.Errorf("attribute not escaped: %s", out)
	}
	if !strings.Contains(out, ">a&lt;b &amp; c&gt;</text>") {
		t.Errorf("text not escaped: %s", out)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0.95, "0.95"},
		{0.6, "0.6"},
		{0.1, "0.1"},
		{2, "2"},
	}
	for _, tc := range tests {
		if got := FormatFloat(tc.in); got != tc.expected {
			t.Errorf("FormatFloat(%v) = %q, expected %q", tc.in, got, tc.expected)
		}
	}

	// Runtime arithmetic keeps the binary rounding error.
	step := 0.05
	faded := 1.0 - float64(7*step)
	if got := FormatFloat(faded); got != "0.6499999999999999" {
		t.Errorf("FormatFloat(1.0 - 7*0.05) = %q", got)
	}
}
