package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/inkstorm/internal/board"
	"github.com/dshills/inkstorm/internal/canvas"
)

// render draws the board, the open menu, and the status line.
func (a *app) render() {
	a.screen.Clear()

	for _, shape := range a.editor.Document().Shapes() {
		a.renderShape(shape)
	}
	if a.menu != nil {
		a.renderMenu()
	}
	a.renderStatus()

	a.screen.Show()
}

func (a *app) renderShape(shape board.Shape) {
	cam := a.editor.Camera()
	topLeft := cam.PageToScreen(canvas.Point{X: shape.X, Y: shape.Y})
	bottomRight := cam.PageToScreen(canvas.Point{X: shape.X + shape.W, Y: shape.Y + shape.H})

	style := tcell.StyleDefault.Background(cssToTcell(shape.Color))
	if a.isSelected(shape.ID) {
		style = style.Reverse(true)
	}

	fill := ' '
	if shape.Kind == board.KindNote {
		fill = '░'
	}

	w, h := a.screen.Size()
	for y := int(topLeft.Y); y < int(bottomRight.Y); y++ {
		for x := int(topLeft.X); x < int(bottomRight.X); x++ {
			if x >= 0 && y >= 0 && x < w && y < h-1 {
				a.screen.SetContent(x, y, fill, nil, style)
			}
		}
	}
}

func (a *app) renderMenu() {
	style := tcell.StyleDefault.
		Background(tcell.ColorDarkSlateGray).
		Foreground(tcell.ColorWhite)

	x, y := int(a.menu.at.X), int(a.menu.at.Y)
	width := 0
	for _, item := range a.menu.items {
		if len(item) > width {
			width = len(item)
		}
	}

	for i, item := range a.menu.items {
		for j := 0; j < width+2; j++ {
			r := ' '
			if j > 0 && j <= len(item) {
				r = rune(item[j-1])
			}
			a.screen.SetContent(x+j, y+i, r, nil, style)
		}
	}
}

func (a *app) renderStatus() {
	w, h := a.screen.Size()
	cam := a.editor.Camera()

	status := fmt.Sprintf(" %s | zoom %.0f%% | %d selected | gesture: %s | right-drag pan, wheel zoom, q quit",
		a.editor.ActiveTool(),
		cam.Zoom*100,
		len(a.editor.Selection()),
		a.router.GestureState())

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		a.screen.SetContent(x, h-1, r, nil, style)
	}
}

func (a *app) isSelected(id string) bool {
	for _, sel := range a.editor.Selection() {
		if sel == id {
			return true
		}
	}
	return false
}

// cssToTcell converts a CSS hex color to a tcell color, falling back to
// gray for unparseable values.
func cssToTcell(css string) tcell.Color {
	c, err := colorful.Hex(css)
	if err != nil {
		return tcell.ColorGray
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
