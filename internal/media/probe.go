package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Probe sniffs the media type of data and, for images, decodes the header to
// find the intrinsic size. Videos are accepted with unknown dimensions.
func Probe(data []byte) (string, *Dimensions, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		if isSVG(data) {
			return probeSVG(data)
		}
		return "", nil, ErrNotMedia
	}

	switch {
	case filetype.IsVideo(data):
		return kind.MIME.Value, nil, nil
	case filetype.IsImage(data):
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			// svg, heif and friends: known image, size unknown
			return kind.MIME.Value, nil, nil
		}
		return kind.MIME.Value, &Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrNotMedia, kind.MIME.Value)
	}
}

const svgMIME = "image/svg+xml"

// filetype does not sniff text formats
func isSVG(data []byte) bool {
	head := data[:min(len(data), 1024)]
	return bytes.Contains(head, []byte("<svg"))
}

func probeSVG(data []byte) (string, *Dimensions, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("%w: malformed svg: %w", ErrNotMedia, err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return svgMIME, nil, nil
	}
	return svgMIME, &Dimensions{Width: icon.ViewBox.W, Height: icon.ViewBox.H}, nil
}
