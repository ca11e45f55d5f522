package editor

// The editor core talks to its host shell through two narrow surfaces: the
// Host port below (dialogs, file writes, font enumeration) and the Command
// channel for menu or accelerator triggered operations. Everything else
// (window chrome, menu wiring) stays outside the core.

// SaveDialogResult is the outcome of a save dialog. Cancellation is not an
// error; the requested operation is silently dropped.
type SaveDialogResult struct {
	Canceled bool
	Path     string
}

// OpenImageResult is the outcome of an image-open dialog. On success DataURL
// holds the file contents as a base64 data URL.
type OpenImageResult struct {
	Success  bool
	Canceled bool
	DataURL  string
	Err      string
}

// SystemFontsResult is the outcome of a font enumeration request.
type SystemFontsResult struct {
	Success bool
	Fonts   []string
	Err     string
}

// Host is the persistence/export port implemented by the shell around the
// editor core.
type Host interface {
	// ShowSaveDialog asks the user for a destination path. extensions lists
	// the accepted file types, e.g. ["png", "jpeg"].
	ShowSaveDialog(extensions []string) SaveDialogResult
	// WriteFile writes a base64 data URL to the given path; the host strips
	// the MIME prefix and writes raw bytes.
	WriteFile(path, dataURL string) error
	// OpenImageDialog asks the user for an image file and returns it as a
	// data URL.
	OpenImageDialog() OpenImageResult
	// SystemFonts enumerates installed font family names.
	SystemFonts() SystemFontsResult
	// Notify shows a blocking notice, used for I/O failures.
	Notify(msg string)
}

// Command is a host-shell event delivered into the editor, one per menu item
// or keyboard accelerator.
type Command int

const (
	CommandUndo Command = iota
	CommandRedo
	CommandSave
	CommandCopy
	CommandPaste
)

// HandleCommand dispatches a host-shell command to the corresponding editor
// operation.
func (e *Editor) HandleCommand(cmd Command) {
	switch cmd {
	case CommandUndo:
		e.Undo()
	case CommandRedo:
		e.Redo()
	case CommandSave:
		e.RequestSave()
	case CommandCopy:
		e.Copy()
	case CommandPaste:
		e.Paste()
	}
}
