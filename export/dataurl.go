package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	// Decoders registered for image.Decode: stdlib formats plus the extra
	// ones x/image carries.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// EncodeDataURL wraps raw bytes as a base64 data URL:
// data:<mediatype>;base64,<data>.
func EncodeDataURL(mediatype string, data []byte) string {
	return "data:" + mediatype + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its media type and raw bytes.
func DecodeDataURL(dataURL string) (mediatype string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("export: not a data URL")
	}
	mediatype, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("export: data URL is not base64")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("export: decode data URL: %w", err)
	}
	return mediatype, data, nil
}

// DecodeImage decodes the bitmap carried by an image data URL.
func DecodeImage(dataURL string) (image.Image, error) {
	_, data, err := DecodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("export: decode image: %w", err)
	}
	return img, nil
}
