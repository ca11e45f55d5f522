package export

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"sketch/scene"
)

func testScene() *scene.Scene {
	sc := scene.New()
	sc.Add(&scene.Shape{
		ID:   1,
		Kind: scene.KindRectangle,
		X:    50, Y: 50,
		Fill: "#ff0000",
		Rect: &scene.RectData{W: 100, H: 60},
	})
	return sc
}

func decodeExport(t *testing.T, dataURL, wantType string) image.Image {
	t.Helper()
	mediatype, data, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if mediatype != wantType {
		t.Fatalf("mediatype = %q, want %q", mediatype, wantType)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding exported %s: %v", wantType, err)
	}
	return img
}

func TestPNGExport(t *testing.T) {
	exp, err := NewExporter(FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Width, opts.Height = 300, 200

	dataURL, err := exp.Export(testScene(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("bad prefix: %.40q", dataURL)
	}

	img := decodeExport(t, dataURL, "image/png")
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("raster size = %dx%d, want 300x200", b.Dx(), b.Dy())
	}

	// PNG keeps transparency where nothing is drawn.
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("empty corner alpha = %d, want transparent", a)
	}
	// The filled rectangle interior is opaque red.
	r, _, _, a := img.At(100, 80).RGBA()
	if a == 0 || r < 0x8000 {
		t.Errorf("rectangle interior rgba = (%d, _, _, %d), want opaque red", r, a)
	}
}

func TestJPEGExportCompositesBackground(t *testing.T) {
	exp, err := NewExporter(FormatJPEG)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Width, opts.Height = 300, 200
	opts.Background = "#ffffff"

	dataURL, err := exp.Export(testScene(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Fatalf("bad prefix: %.40q", dataURL)
	}

	img := decodeExport(t, dataURL, "image/jpeg")
	// JPEG has no alpha; empty regions carry the composited background.
	r, g, b, _ := img.At(5, 5).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("empty corner rgb = (%d, %d, %d), want near white", r, g, b)
	}
}

func TestExportInvalidSize(t *testing.T) {
	exp, _ := NewExporter(FormatPNG)
	if _, err := exp.Export(testScene(), Options{Width: 0, Height: 100}); err == nil {
		t.Error("zero width should fail")
	}
}

func TestNewExporterUnknownFormat(t *testing.T) {
	if _, err := NewExporter(Format("svg")); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{"svg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"scene.png", FormatPNG},
		{"scene.jpg", FormatJPEG},
		{"scene.JPEG", FormatJPEG},
		{"scene", FormatPNG},
		{"scene.txt", FormatPNG},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	payload := []byte("not really an image")
	url := EncodeDataURL("application/octet-stream", payload)

	mediatype, data, err := DecodeDataURL(url)
	if err != nil {
		t.Fatal(err)
	}
	if mediatype != "application/octet-stream" {
		t.Errorf("mediatype = %q", mediatype)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload round trip mismatch: %q", data)
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	for _, bad := range []string{
		"",
		"http://example.com/a.png",
		"data:image/png;base64,!!!not-base64!!!",
	} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Errorf("DecodeDataURL(%q) should fail", bad)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage(EncodeDataURL("image/png", buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size = %dx%d, want 3x2", b.Dx(), b.Dy())
	}

	if _, err := DecodeImage("data:image/png;base64,AAAA"); err == nil {
		t.Error("truncated image data should fail to decode")
	}
}
