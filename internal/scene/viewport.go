package scene

// Viewport is a GL viewport rectangle in framebuffer pixels.
type Viewport struct {
	X, Y, Width, Height int32
}

// FitViewport returns the largest viewport with the given aspect ratio
// (width/height) centered in a framebuffer of fbWidth x fbHeight.
func FitViewport(fbWidth, fbHeight int, aspect float32) Viewport {
	if fbWidth <= 0 || fbHeight <= 0 || aspect <= 0 {
		return Viewport{}
	}
	w := float32(fbWidth)
	h := w / aspect
	if h > float32(fbHeight) {
		h = float32(fbHeight)
		w = h * aspect
	}
	vw, vh := int32(w+0.5), int32(h+0.5)
	return Viewport{
		X:      (int32(fbWidth) - vw) / 2,
		Y:      (int32(fbHeight) - vh) / 2,
		Width:  vw,
		Height: vh,
	}
}
