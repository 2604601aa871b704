package media

import "math"

// Insets are added above and below the scaled media.
type Insets struct {
	Top    float64
	Bottom float64
}

// Geometry is the on-screen placement of a media placeholder.
type Geometry struct {
	Width   float64
	Height  float64
	OriginX float64
}

// Layout fits media of the given intrinsic size into containerWidth. Width is
// never wider than the container, height keeps the aspect ratio and the media
// is always centered horizontally. Degenerate input (no container, unknown or
// empty intrinsic size) yields a zero Geometry.
func Layout(containerWidth float64, intrinsic *Dimensions, insets Insets) Geometry {
	if !(containerWidth > 0) || math.IsInf(containerWidth, 0) {
		return Geometry{}
	}
	if intrinsic == nil || !(intrinsic.Width > 0) || math.IsInf(intrinsic.Width, 0) {
		return Geometry{}
	}

	width := math.Floor(math.Min(intrinsic.Width, containerWidth))
	if width <= 0 {
		return Geometry{}
	}

	scaled := 0.0
	if intrinsic.Height > 0 {
		scaled = math.Floor(intrinsic.Height * (width / intrinsic.Width))
	}
	height := math.Max(0, scaled+insets.Top+insets.Bottom)

	return Geometry{
		Width:   width,
		Height:  height,
		OriginX: math.Floor((containerWidth - width) / 2),
	}
}
