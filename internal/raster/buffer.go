package raster

import "image"

// FrameBuffer is a packed RGB image, 3 bytes per pixel, rows stored
// bottom-up: row 0 of Pix is the bottom row of the picture.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // len = W*H*3
}

// NewFrameBuffer allocates a zeroed (black) buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize sets the dimensions, reallocating Pix only when its length no
// longer matches w*h*3.
func (fb *FrameBuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb.Width, fb.Height = w, h
	if n := w * h * 3; len(fb.Pix) != n {
		fb.Pix = make([]uint8, n)
	}
}

// Offset returns the index of pixel (x, row) in Pix, counting rows from the
// bottom.
func (fb *FrameBuffer) Offset(x, row int) int {
	return (row*fb.Width + x) * 3
}

// At returns the RGB bytes of the pixel at screen coordinate (x, y), where
// y=0 is the top row.
func (fb *FrameBuffer) At(x, y int) (r, g, b uint8) {
	i := fb.Offset(x, fb.Height-y-1)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// Image converts the buffer to a top-down opaque NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.Offset(0, fb.Height-y-1)
		dst := y * img.Stride
		for x := 0; x < fb.Width; x++ {
			img.Pix[dst] = fb.Pix[src]
			img.Pix[dst+1] = fb.Pix[src+1]
			img.Pix[dst+2] = fb.Pix[src+2]
			img.Pix[dst+3] = 255
			src += 3
			dst += 4
		}
	}
	return img
}
