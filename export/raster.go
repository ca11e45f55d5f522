package export

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"sketch/render"
	"sketch/scene"
	"sketch/view"
)

// rasterize draws the scene at 1:1 through an identity view transform.
func rasterize(sc *scene.Scene, opts Options, background bool) (*gg.Context, error) {
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: invalid raster size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	if background {
		bg, err := colorful.Hex(opts.Background)
		if err != nil {
			bg = colorful.Color{R: 1, G: 1, B: 1}
		}
		dc.SetColor(bg)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}
	render.New(opts.Fonts).Draw(dc, sc, view.New(), nil, nil)
	return dc, nil
}

type pngExporter struct{}

func (*pngExporter) FileExtension() string { return "png" }
func (*pngExporter) FormatName() string    { return "PNG" }

// Export rasterizes the canvas as-is: transparent wherever nothing is drawn.
func (*pngExporter) Export(sc *scene.Scene, opts Options) (string, error) {
	dc, err := rasterize(sc, opts, false)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("export: encode png: %w", err)
	}
	slog.Debug("exported scene", "format", "png", "bytes", buf.Len())
	return EncodeDataURL("image/png", buf.Bytes()), nil
}

type jpegExporter struct{}

func (*jpegExporter) FileExtension() string { return "jpg" }
func (*jpegExporter) FormatName() string    { return "JPEG" }

// Export composites the opaque background beneath the content before
// encoding; JPEG cannot carry the alpha channel PNG export keeps.
func (*jpegExporter) Export(sc *scene.Scene, opts Options) (string, error) {
	dc, err := rasterize(sc, opts, true)
	if err != nil {
		return "", err
	}
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	var buf bytes.Buffer
	if err := dc.EncodeJPEG(&buf, quality); err != nil {
		return "", fmt.Errorf("export: encode jpeg: %w", err)
	}
	slog.Debug("exported scene", "format", "jpeg", "bytes", buf.Len())
	return EncodeDataURL("image/jpeg", buf.Bytes()), nil
}
