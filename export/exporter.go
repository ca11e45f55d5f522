// Package export rasterizes scenes to image formats and encodes them as
// base64 data URLs for the host's write-file port. Only raster formats are
// supported; the diagram itself is never persisted here.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"sketch/fonts"
	"sketch/scene"
)

// Format represents an export format.
type Format string

const (
	// FormatPNG exports a PNG, transparent where nothing is drawn.
	FormatPNG Format = "png"
	// FormatJPEG exports a JPEG with the background composited beneath the
	// content, since JPEG has no alpha channel.
	FormatJPEG Format = "jpeg"
)

// ErrUnsupportedFormat is wrapped by NewExporter for unknown formats.
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format")

// Options configures the export raster.
type Options struct {
	Width      int
	Height     int
	Background string // hex background for JPEG and the editor canvas
	Quality    int    // JPEG quality 1-100
	Fonts      *fonts.Catalog
}

// DefaultOptions returns the standard 1200x800 white-background raster.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 800, Background: "#ffffff", Quality: 90}
}

// Exporter renders a scene to one format.
type Exporter interface {
	// Export rasterizes the scene and returns it as a base64 data URL.
	Export(sc *scene.Scene, opts Options) (string, error)
	// FileExtension returns the recommended file extension.
	FileExtension() string
	// FormatName returns a human-readable format name.
	FormatName() string
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatPNG:
		return &pngExporter{}, nil
	case FormatJPEG:
		return &jpegExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	default:
		return FormatPNG
	}
}
