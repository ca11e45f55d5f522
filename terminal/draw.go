package terminal

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"sketch/render"
)

// draw renders the scene into the offscreen raster, downscales it onto the
// half-block cell grid, and repaints the screen with the status line.
func (sh *Shell) draw() {
	cols, rows := sh.screen.Size()
	canvasRows := rows - 1
	if cols < 2 || canvasRows < 2 {
		return
	}
	w, h := cols*cellW, canvasRows*cellH
	if sh.dc == nil || sh.dc.Width() != w || sh.dc.Height() != h {
		sh.dc = gg.NewContext(w, h)
		sh.small = image.NewRGBA(image.Rect(0, 0, cols, canvasRows*2))
	}

	sh.dc.ClearWithColor(gg.RGBA{R: 0.98, G: 0.98, B: 0.98, A: 1})
	var preview *render.LinePreview
	if a, b, ok := sh.ed.LinePreview(); ok {
		preview = &render.LinePreview{A: a, B: b}
	}
	sh.rend.Draw(sh.dc, sh.ed.Scene(), sh.ed.View(), sh.ed.Selected(), preview)

	// Two raster rows per cell through the upper-half-block glyph.
	xdraw.ApproxBiLinear.Scale(sh.small, sh.small.Bounds(), sh.dc.Image(), sh.dc.Image().Bounds(), xdraw.Src, nil)
	for y := 0; y < canvasRows; y++ {
		for x := 0; x < cols; x++ {
			top := sh.small.RGBAAt(x, 2*y)
			bot := sh.small.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			sh.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	sh.drawTextOverlay(cols, canvasRows)
	sh.drawStatus(cols, rows-1)
	sh.screen.Show()
}

// drawTextOverlay paints the in-progress text buffer at the overlay anchor
// while a text edit is active.
func (sh *Shell) drawTextOverlay(cols, canvasRows int) {
	if sh.mode != modeText {
		return
	}
	anchor, ok := sh.ed.TextEditAnchor()
	if !ok {
		return
	}
	sx, sy := sh.ed.View().CanvasToScreen(anchor)
	cx, cy := int(sx)/cellW, int(sy)/cellH
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightYellow)

	line, col := 0, 0
	for _, r := range sh.textBuf {
		if r == '\n' {
			line++
			col = 0
			continue
		}
		x, y := cx+col, cy+line
		if x >= 0 && x < cols && y >= 0 && y < canvasRows {
			sh.screen.SetContent(x, y, r, nil, style)
		}
		col++
	}
	// Block cursor at the insertion point.
	if x, y := cx+col, cy+line; x >= 0 && x < cols && y >= 0 && y < canvasRows {
		sh.screen.SetContent(x, y, '▏', nil, style)
	}
}

func (sh *Shell) drawStatus(cols, row int) {
	cur, total := sh.ed.HistoryStats()
	var line string
	switch sh.mode {
	case modeCommand:
		line = ":" + string(sh.cmdBuf)
	case modeText:
		line = "TEXT (Enter commit, Alt+Enter newline, Esc cancel)"
	default:
		line = fmt.Sprintf(" %s | tool:%s | zoom:%.2f | history:%d/%d | %s",
			sh.ed.State(), sh.ed.Tool(), sh.ed.View().Zoom, cur, total, sh.status)
	}

	fg, bg := statusColors()
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		sh.screen.SetContent(x, row, r, nil, style)
	}
}

// statusColors derives the status bar colors from the selection blue so the
// chrome matches the canvas decoration.
func statusColors() (fg, bg tcell.Color) {
	base, _ := colorful.Hex("#2f80ed")
	dark := base.BlendLab(colorful.Color{}, 0.55)
	r, g, b := dark.RGB255()
	return tcell.ColorWhite, tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
