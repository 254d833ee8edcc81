package snapshot

import (
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
)

// Formats lists the output encodings accepted by Encode.
var Formats = []string{"webp", "tga", "png"}

func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == strings.ToLower(format) {
			return true
		}
	}
	return false
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "tga":
		err = tga.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		return errors.Errorf("snapshot: unknown format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, "snapshot: %s encode", format)
	}
	return nil
}

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "webp":
		return "image/webp"
	case "tga":
		return "image/x-tga"
	case "png":
		return "image/png"
	}
	return "application/octet-stream"
}
