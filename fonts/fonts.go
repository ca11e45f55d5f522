// Package fonts enumerates installed system fonts and hands out measured,
// cached font faces. It backs both the text-measurement needs of the scene
// and the font-name enumeration of the host port.
package fonts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/tdewolff/font"

	"sketch/scene"
)

// ErrNoSuchFamily is returned when no installed font matches the requested
// family.
var ErrNoSuchFamily = errors.New("fonts: no matching family")

type faceKey struct {
	file string
	size float64
}

// Catalog scans the system font directories once, lazily, and caches parsed
// font sources and sized faces. Catalog is safe for concurrent use.
type Catalog struct {
	mu      sync.Mutex
	system  *font.SystemFonts
	scanErr error
	scanned bool
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewCatalog creates an empty catalog. The system scan runs on first use.
func NewCatalog() *Catalog {
	return &Catalog{
		sources: make(map[string]*text.FontSource),
		faces:   make(map[faceKey]text.Face),
	}
}

// scanLocked performs the one-time system font directory walk.
func (c *Catalog) scanLocked() error {
	if c.scanned {
		return c.scanErr
	}
	c.scanned = true
	c.system, c.scanErr = font.FindSystemFonts(font.DefaultFontDirs())
	if c.scanErr != nil {
		slog.Warn("system font scan failed", "error", c.scanErr)
	}
	return c.scanErr
}

// Families returns the sorted names of all installed font families.
func (c *Catalog) Families() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.scanLocked(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(c.system.Fonts))
	for family := range c.system.Fonts {
		names = append(names, family)
	}
	sort.Strings(names)
	return names, nil
}

// Face returns a sized face for the family and style, loading and caching
// the font file on first use. An empty family falls back to the system's
// default match.
func (c *Catalog) Face(family string, size float64, bold, italic bool) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.scanLocked(); err != nil {
		return nil, err
	}

	style := font.Regular
	if bold {
		style = font.Bold
	}
	if italic {
		style |= font.Italic
	}
	meta, ok := c.system.Match(family, style)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchFamily, family)
	}

	source, ok := c.sources[meta.Filename]
	if !ok {
		data, err := os.ReadFile(meta.Filename)
		if err != nil {
			return nil, fmt.Errorf("fonts: read %s: %w", meta.Filename, err)
		}
		source, err = text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("fonts: parse %s: %w", meta.Filename, err)
		}
		c.sources[meta.Filename] = source
	}

	key := faceKey{file: meta.Filename, size: size}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	face := source.Face(size)
	c.faces[key] = face
	return face, nil
}

// Measure computes a text payload's extents: the widest line advance by the
// line height times the line count. When no matching font is available the
// extents fall back to a fixed-ratio approximation so text shapes stay
// selectable.
func (c *Catalog) Measure(td *scene.TextData) (w, h float64) {
	face, err := c.Face(td.Family, td.Size, td.Bold, td.Italic)
	if err != nil {
		return approximate(td)
	}
	lineHeight := face.Metrics().LineHeight()
	for _, line := range td.Lines {
		if adv := face.Advance(line); adv > w {
			w = adv
		}
	}
	return w, lineHeight * float64(len(td.Lines))
}

// approximate estimates extents from the font size alone.
func approximate(td *scene.TextData) (w, h float64) {
	longest := 0
	for _, line := range td.Lines {
		if n := len([]rune(line)); n > longest {
			longest = n
		}
	}
	return 0.6 * td.Size * float64(longest), 1.2 * td.Size * float64(len(td.Lines))
}

var _ scene.Measurer = (*Catalog)(nil)
