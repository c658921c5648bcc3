package apitype

import (
	"fmt"
	"image"
)

// MinCropSize is the nominal size of the resize handle. The crop area is
// never resized smaller than the handle so that it stays grabbable.
const MinCropSize = float32(20)

// CropRect is the crop overlay geometry in display coordinates. Left and
// top are the position of the overlay inside the displayed image, width
// and height grow towards bottom-right.
type CropRect struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

func NewCropRect(left float32, top float32, width float32, height float32) CropRect {
	return CropRect{Left: left, Top: top, Width: width, Height: height}
}

func (s CropRect) Right() float32 {
	return s.Left + s.Width
}

func (s CropRect) Bottom() float32 {
	return s.Top + s.Height
}

func (s CropRect) Contains(x float32, y float32) bool {
	return x >= s.Left && x < s.Right() && y >= s.Top && y < s.Bottom()
}

// HandleRect is the resize handle area anchored at the bottom-right corner.
func (s CropRect) HandleRect() CropRect {
	return CropRect{
		Left:   s.Right() - MinCropSize,
		Top:    s.Bottom() - MinCropSize,
		Width:  MinCropSize,
		Height: MinCropSize,
	}
}

func (s CropRect) MovedBy(deltaX float32, deltaY float32) CropRect {
	s.Left += deltaX
	s.Top += deltaY
	return s
}

// ResizedBy grows or shrinks the rectangle from the bottom-right corner.
// Shrinking clamps to MinCropSize, growth is not clamped so the area can
// extend past the displayed image.
func (s CropRect) ResizedBy(deltaX float32, deltaY float32) CropRect {
	s.Width += deltaX
	s.Height += deltaY
	if s.Width < MinCropSize {
		s.Width = MinCropSize
	}
	if s.Height < MinCropSize {
		s.Height = MinCropSize
	}
	return s
}

// ToImageRect maps the overlay geometry from display coordinates to the
// pixel coordinates of the decoded image. The display shows the image
// scaled to fit, so the rectangle is scaled by the native/displayed size
// ratio and then clipped to the image bounds. With a zero display size
// the coordinates are applied as-is.
func (s CropRect) ToImageRect(displaySize Size, nativeSize Size) image.Rectangle {
	scaleX := float32(1)
	scaleY := float32(1)
	if !displaySize.IsZero() && !nativeSize.IsZero() {
		scaleX = float32(nativeSize.Width()) / float32(displaySize.Width())
		scaleY = float32(nativeSize.Height()) / float32(displaySize.Height())
	}

	rect := image.Rect(
		int(s.Left*scaleX),
		int(s.Top*scaleY),
		int(s.Right()*scaleX),
		int(s.Bottom()*scaleY),
	)
	return rect.Intersect(image.Rect(0, 0, nativeSize.Width(), nativeSize.Height()))
}

func (s CropRect) String() string {
	return fmt.Sprintf("CropRect{%.0f, %.0f, %.0f x %.0f}", s.Left, s.Top, s.Width, s.Height)
}
