package editor

import (
	"image"
	"log/slog"
	"math"

	"sketch/export"
	"sketch/geometry"
	"sketch/scene"
)

// ImageLoad is the completion of one asynchronous bitmap decode. It carries
// the shape id rather than a shape reference: the shape may have been deleted
// or cloned away while the decode ran, and a completion for a detached shape
// must be a no-op.
type ImageLoad struct {
	ID     int
	Bitmap image.Image
	Err    error
}

// Loads is the channel the shell pumps decode completions from, feeding each
// one back into CompleteImageLoad on the event goroutine.
func (e *Editor) Loads() <-chan ImageLoad {
	return e.loads
}

// openImage runs the host's file-open flow and, on success, inserts the
// returned bitmap as a new image shape at the click point.
func (e *Editor) openImage(p geometry.Point) {
	if e.host == nil {
		return
	}
	res := e.host.OpenImageDialog()
	if res.Canceled {
		return
	}
	if !res.Success {
		e.host.Notify("open image: " + res.Err)
		return
	}
	e.InsertImageFromDataURL(p, res.DataURL)
	e.tool = ToolSelect
}

// InsertImageFromDataURL inserts an image shape in the loading state and
// starts its decode. The insertion commits immediately; the decode completion
// only flips the shape's own load state.
func (e *Editor) InsertImageFromDataURL(p geometry.Point, dataURL string) *scene.Shape {
	s := scene.NewImage(e.allocID(), p, dataURL)
	e.scene.Add(s)
	e.selectShape(s)
	e.commit()
	e.startImageLoad(s)
	return s
}

// startImageLoad decodes the shape's source off the event goroutine and
// queues the completion.
func (e *Editor) startImageLoad(s *scene.Shape) {
	id := s.ID
	source := s.Image.Source
	go func() {
		img, err := export.DecodeImage(source)
		e.loads <- ImageLoad{ID: id, Bitmap: img, Err: err}
	}()
}

// CompleteImageLoad applies a decode completion to the current scene. The
// shape is looked up by id; if it is gone the completion is dropped. A decode
// failure moves the shape into a permanent error state that still renders as
// a placeholder, so the user can select and delete it.
func (e *Editor) CompleteImageLoad(l ImageLoad) {
	s := e.scene.FindByID(l.ID)
	if s == nil || s.Kind != scene.KindImage {
		return
	}
	if l.Err != nil {
		slog.Warn("image decode failed", "id", l.ID, "error", l.Err)
		s.Image.State = scene.ImageError
		return
	}
	s.Image.State = scene.ImageLoaded
	s.Image.Bitmap = l.Bitmap

	// First load of a fresh insertion adopts the natural bitmap size,
	// clamped so one oversized photo cannot swallow the canvas. Restored or
	// pasted shapes keep the extents the user gave them.
	if !s.Image.Sized {
		b := l.Bitmap.Bounds()
		w, h := float64(b.Dx()), float64(b.Dy())
		if long := math.Max(w, h); long > scene.MaxImageEdge {
			scale := scene.MaxImageEdge / long
			w *= scale
			h *= scale
		}
		s.Image.W = math.Max(geometry.MinSize, w)
		s.Image.H = math.Max(geometry.MinSize, h)
		s.Image.Sized = true
	}
}

// reloadImages restarts decodes for every image shape left in the loading
// state, which is where history clones land because snapshots never share
// decoded bitmaps.
func (e *Editor) reloadImages() {
	for _, s := range e.scene.Shapes {
		if s.Kind == scene.KindImage && s.Image.State == scene.ImageLoading && s.Image.Source != "" {
			e.startImageLoad(s)
		}
	}
}
