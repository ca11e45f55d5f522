package terminal

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sketch/editor"
	"sketch/export"
	"sketch/fonts"
)

// The shell implements the editor's host port. Terminals have no native file
// dialogs, so paths arrive through the :-command line first (`:w out.png`,
// `:image pic.jpg`) and the port calls consume them.

var _ editor.Host = (*Shell)(nil)

// runCommand executes one :-command.
func (sh *Shell) runCommand(cmd string) {
	name, arg, _ := strings.Cut(strings.TrimSpace(cmd), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "q", "quit":
		sh.quit = true
	case "w", "export":
		if arg == "" {
			sh.status = "usage: :w <path.png|path.jpg>"
			return
		}
		sh.pendingSavePath = arg
		sh.ed.HandleCommand(editor.CommandSave)
	case "image":
		if arg == "" {
			sh.status = "usage: :image <path>"
			return
		}
		sh.pendingImagePath = arg
		sh.ed.SetTool(editor.ToolImage)
		sh.status = "click the canvas to place " + filepath.Base(arg)
	case "fill":
		sh.ed.SetFillColor(arg)
	case "font":
		sh.ed.SetFontFamily(arg)
	case "fonts":
		res := sh.SystemFonts()
		if !res.Success {
			sh.status = res.Err
			return
		}
		sh.status = fmt.Sprintf("%d families installed", len(res.Fonts))
	default:
		sh.status = "unknown command: " + name
	}
}

// ShowSaveDialog consumes the path queued by :w. No queued path means the
// user canceled.
func (sh *Shell) ShowSaveDialog(extensions []string) editor.SaveDialogResult {
	path := sh.pendingSavePath
	sh.pendingSavePath = ""
	if path == "" {
		return editor.SaveDialogResult{Canceled: true}
	}
	return editor.SaveDialogResult{Path: path}
}

// WriteFile strips the data URL prefix and writes the raw bytes.
func (sh *Shell) WriteFile(path, dataURL string) error {
	_, data, err := export.DecodeDataURL(dataURL)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	sh.status = "wrote " + path
	return nil
}

// OpenImageDialog consumes the path queued by :image and returns the file as
// a data URL.
func (sh *Shell) OpenImageDialog() editor.OpenImageResult {
	path := sh.pendingImagePath
	sh.pendingImagePath = ""
	if path == "" {
		return editor.OpenImageResult{Canceled: true}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return editor.OpenImageResult{Err: err.Error()}
	}
	mediatype := http.DetectContentType(data)
	if !strings.HasPrefix(mediatype, "image/") {
		return editor.OpenImageResult{Err: "not an image: " + path}
	}
	return editor.OpenImageResult{
		Success: true,
		DataURL: export.EncodeDataURL(mediatype, data),
	}
}

// SystemFonts enumerates installed font family names through the catalog.
func (sh *Shell) SystemFonts() editor.SystemFontsResult {
	families, err := sh.fontCatalog().Families()
	if err != nil {
		return editor.SystemFontsResult{Err: err.Error()}
	}
	return editor.SystemFontsResult{Success: true, Fonts: families}
}

// Notify surfaces a blocking notice; in the terminal it lands on the status
// line, which survives until the next command.
func (sh *Shell) Notify(msg string) {
	sh.status = msg
}

func (sh *Shell) fontCatalog() *fonts.Catalog {
	return sh.cat
}
