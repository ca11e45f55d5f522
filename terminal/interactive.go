// Package terminal is the interactive shell around the editor core: it turns
// tcell mouse and key events into pointer and command calls, renders the
// scene raster as half-block cells, and implements the editor's host port
// with :-style command prompts.
package terminal

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"sketch/editor"
	"sketch/export"
	"sketch/fonts"
	"sketch/render"
)

// Cell geometry of the preview raster: the scene is rendered at 2x4 pixels
// per terminal cell, then downscaled to 1x2 so each cell shows two pixels
// through the half-block glyph.
const (
	cellW = 2
	cellH = 4
)

type inputMode int

const (
	modeCanvas inputMode = iota
	modeCommand
	modeText
)

// Shell drives one interactive editing session.
type Shell struct {
	screen tcell.Screen
	ed     *editor.Editor
	cat    *fonts.Catalog
	rend   *render.Renderer

	dc    *gg.Context
	small *image.RGBA

	mode    inputMode
	cmdBuf  []rune
	textBuf []rune
	status  string

	pendingSavePath  string
	pendingImagePath string

	mouseDown bool
	quit      bool
}

// Run opens the terminal UI and blocks until the user quits.
func Run(cat *fonts.Catalog, opts export.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	sh := &Shell{screen: screen, cat: cat, rend: render.New(cat)}
	sh.ed = editor.New(sh, cat)
	sh.ed.SetExportOptions(opts)

	// Decode completions arrive on their own goroutine; repost them as
	// interrupt events so all mutation stays on the event loop.
	go func() {
		for l := range sh.ed.Loads() {
			screen.PostEvent(tcell.NewEventInterrupt(l))
		}
	}()

	for !sh.quit {
		sh.draw()
		sh.handleEvent(screen.PollEvent())
	}
	return nil
}

func (sh *Shell) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sh.screen.Sync()

	case *tcell.EventInterrupt:
		if l, ok := ev.Data().(editor.ImageLoad); ok {
			sh.ed.CompleteImageLoad(l)
		}

	case *tcell.EventMouse:
		sh.handleMouse(ev)

	case *tcell.EventKey:
		switch sh.mode {
		case modeCommand:
			sh.handleCommandKey(ev)
		case modeText:
			sh.handleTextKey(ev)
		default:
			sh.handleCanvasKey(ev)
		}
	}
}

// pixelPos maps a cell position to the editor's screen pixel space (the
// center of the cell in the hi-res raster).
func pixelPos(x, y int) (float64, float64) {
	return float64(x*cellW) + float64(cellW)/2, float64(y*cellH) + float64(cellH)/2
}

func (sh *Shell) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	px, py := pixelPos(x, y)
	vt := sh.ed.View()

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		vt.ZoomAt(px, py, true)
	case ev.Buttons()&tcell.WheelDown != 0:
		vt.ZoomAt(px, py, false)
	case ev.Buttons()&tcell.ButtonPrimary != 0:
		if !sh.mouseDown {
			sh.mouseDown = true
			sh.ed.PointerDown(px, py)
			sh.maybeOpenTextOverlay()
		} else {
			sh.ed.PointerMove(px, py)
		}
	default:
		if sh.mouseDown {
			sh.mouseDown = false
			sh.ed.PointerUp(px, py)
		} else {
			sh.ed.PointerMove(px, py)
		}
	}
}

// maybeOpenTextOverlay switches the shell into text input when a pointer
// event has started a text edit.
func (sh *Shell) maybeOpenTextOverlay() {
	if sh.ed.State() == editor.StateEditingText && sh.mode != modeText {
		sh.mode = modeText
		sh.textBuf = []rune(sh.ed.TextEditContent())
	}
}

func (sh *Shell) handleCanvasKey(ev *tcell.EventKey) {
	vt := sh.ed.View()
	switch ev.Key() {
	case tcell.KeyCtrlC:
		sh.quit = true
	case tcell.KeyCtrlZ:
		sh.ed.HandleCommand(editor.CommandUndo)
	case tcell.KeyCtrlR:
		sh.ed.HandleCommand(editor.CommandRedo)
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		sh.ed.Delete()
	case tcell.KeyEnter:
		sh.ed.EditSelectedText()
		sh.maybeOpenTextOverlayFromKey()
	case tcell.KeyLeft:
		vt.PanBy(4*cellW, 0)
	case tcell.KeyRight:
		vt.PanBy(-4*cellW, 0)
	case tcell.KeyUp:
		vt.PanBy(0, 4*cellH)
	case tcell.KeyDown:
		vt.PanBy(0, -4*cellH)
	case tcell.KeyEscape:
		sh.ed.SetTool(editor.ToolSelect)
	case tcell.KeyRune:
		sh.handleCanvasRune(ev.Rune())
	}
}

func (sh *Shell) maybeOpenTextOverlayFromKey() {
	if sh.ed.State() == editor.StateEditingText {
		sh.mode = modeText
		sh.textBuf = []rune(sh.ed.TextEditContent())
	}
}

func (sh *Shell) handleCanvasRune(r rune) {
	switch r {
	case 'q':
		sh.quit = true
	case ':':
		sh.mode = modeCommand
		sh.cmdBuf = sh.cmdBuf[:0]
	case 'v':
		sh.ed.SetTool(editor.ToolSelect)
	case 'r':
		sh.ed.SetTool(editor.ToolRectangle)
	case 'c':
		sh.ed.SetTool(editor.ToolCircle)
	case 'd':
		sh.ed.SetTool(editor.ToolDiamond)
	case 'l':
		sh.ed.SetTool(editor.ToolLine)
	case 't':
		sh.ed.SetTool(editor.ToolText)
	case 'i':
		sh.ed.SetTool(editor.ToolImage)
	case 'u':
		sh.ed.HandleCommand(editor.CommandUndo)
	case 'U':
		sh.ed.HandleCommand(editor.CommandRedo)
	case 'y':
		sh.ed.HandleCommand(editor.CommandCopy)
	case 'p':
		sh.ed.HandleCommand(editor.CommandPaste)
	case 'f':
		sh.ed.FlipSelectedH()
	case 'F':
		sh.ed.FlipSelectedV()
	case 'x':
		sh.ed.Delete()
	case '+', '=':
		w, h := sh.screen.Size()
		sh.ed.View().ZoomAt(float64(w*cellW)/2, float64(h*cellH)/2, true)
	case '-':
		w, h := sh.screen.Size()
		sh.ed.View().ZoomAt(float64(w*cellW)/2, float64(h*cellH)/2, false)
	}
}

func (sh *Shell) handleCommandKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		sh.mode = modeCanvas
		sh.cmdBuf = sh.cmdBuf[:0]
	case tcell.KeyEnter:
		cmd := string(sh.cmdBuf)
		sh.cmdBuf = sh.cmdBuf[:0]
		sh.mode = modeCanvas
		sh.runCommand(cmd)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(sh.cmdBuf) > 0 {
			sh.cmdBuf = sh.cmdBuf[:len(sh.cmdBuf)-1]
		}
	case tcell.KeyRune:
		sh.cmdBuf = append(sh.cmdBuf, ev.Rune())
	}
}

func (sh *Shell) handleTextKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		sh.mode = modeCanvas
		sh.textBuf = sh.textBuf[:0]
		sh.ed.CancelTextEdit()
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			sh.textBuf = append(sh.textBuf, '\n')
			return
		}
		content := string(sh.textBuf)
		sh.textBuf = sh.textBuf[:0]
		sh.mode = modeCanvas
		sh.ed.CommitTextEdit(content)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(sh.textBuf) > 0 {
			sh.textBuf = sh.textBuf[:len(sh.textBuf)-1]
		}
	case tcell.KeyRune:
		sh.textBuf = append(sh.textBuf, ev.Rune())
	}
}
