package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/svg-snake/internal/core"
)

// Palette holds the board colors.
type Palette struct {
	Background string
	Grid       string
	Food       string
	Snake      string
	Head       string
}

// DefaultPalette is a dark theme with green snake and red food.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0d1117",
		Grid:       "#21262d",
		Food:       "#da3633",
		Snake:      "#238636",
		Head:       "#2ea043",
	}
}

const (
	fontFamily   = "Arial, sans-serif"
	gridOpacity  = 0.1
	minOpacity   = 0.6
	fadePerIndex = 0.05
)

// Render draws s as an SVG document. The output depends only on s and p.
func Render(s State, p Palette) []byte {
	return draw(s, p).Bytes()
}

// RenderString is Render returning a string.
func RenderString(s State, p Palette) string {
	return draw(s, p).String()
}

func draw(s State, p Palette) *core.Canvas {
	cell := core.CellSize
	width, height := s.Board.Scale(cell)
	c := core.NewCanvas(width, height)

	c.Rect(core.A("width", width), core.A("height", height), core.A("fill", p.Background))

	renderGrid(c, p, cell)
	renderFood(c, s.Food, p, cell)
	renderSnake(c, s.Snake, p, cell)

	if s.GameOver {
		renderGameOver(c, s.Score, p)
	} else {
		c.Text(fmt.Sprintf("Score: %d", s.Score),
			core.A("x", 10),
			core.A("y", height-10),
			core.A("fill", p.Snake),
			core.A("font-family", fontFamily),
			core.A("font-size", 14),
			core.A("font-weight", "bold"),
		)
	}
	return c
}

func renderGrid(c *core.Canvas, p Palette, cell int) {
	width, height := c.Width(), c.Height()
	for x := 0; x <= width; x += cell {
		c.Line(core.A("x1", x), core.A("y1", 0), core.A("x2", x), core.A("y2", height),
			core.A("stroke", p.Grid), core.A("stroke-width", 1), core.A("opacity", gridOpacity))
	}
	for y := 0; y <= height; y += cell {
		c.Line(core.A("x1", 0), core.A("y1", y), core.A("x2", width), core.A("y2", y),
			core.A("stroke", p.Grid), core.A("stroke-width", 1), core.A("opacity", gridOpacity))
	}
}

func renderFood(c *core.Canvas, food core.Point, p Palette, cell int) {
	c.Rect(
		core.A("x", food.X*cell+2),
		core.A("y", food.Y*cell+2),
		core.A("width", cell-4),
		core.A("height", cell-4),
		core.A("fill", p.Food),
		core.A("rx", 3),
	)
}

func renderSnake(c *core.Canvas, body []core.Point, p Palette, cell int) {
	for i, seg := range body {
		color, opacity := p.Snake, core.FormatFloat(SegmentOpacity(i))
		if i == 0 {
			color, opacity = p.Head, "1.0"
		}
		c.Rect(
			core.A("x", seg.X*cell+1),
			core.A("y", seg.Y*cell+1),
			core.A("width", cell-2),
			core.A("height", cell-2),
			core.A("fill", color),
			core.A("opacity", opacity),
			core.A("rx", 2),
		)
	}
}

func renderGameOver(c *core.Canvas, score int, p Palette) {
	width, height := c.Width(), c.Height()
	c.Rect(core.A("x", 0), core.A("y", 0), core.A("width", width), core.A("height", height),
		core.A("fill", "black"), core.A("opacity", 0.7))

	c.Text("GAME OVER",
		core.A("x", width/2),
		core.A("y", height/2-20),
		core.A("text-anchor", "middle"),
		core.A("fill", "white"),
		core.A("font-family", fontFamily),
		core.A("font-size", 24),
		core.A("font-weight", "bold"),
	)
	c.Text(fmt.Sprintf("Score: %d", score),
		core.A("x", width/2),
		core.A("y", height/2+10),
		core.A("text-anchor", "middle"),
		core.A("fill", "white"),
		core.A("font-family", fontFamily),
		core.A("font-size", 16),
	)
	c.Text("Click any direction to restart",
		core.A("x", width/2),
		core.A("y", height/2+35),
		core.A("text-anchor", "middle"),
		core.A("fill", p.Snake),
		core.A("font-family", fontFamily),
		core.A("font-size", 12),
	)
}

// SegmentOpacity returns the body opacity for segment i (i > 0), fading
// toward the tail and never below 0.6.
func SegmentOpacity(i int) float64 {
	// Explicit conversion rounds the product; no fused multiply-add.
	fade := float64(float64(i) * fadePerIndex)
	return math.Max(minOpacity, 1.0-fade)
}
