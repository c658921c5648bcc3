package apitype

import (
	"image"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width: width, height: height}
}

func SizeOfImage(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	bounds := img.Bounds()
	return Size{width: bounds.Dx(), height: bounds.Dy()}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsZero() bool {
	return s.width == 0 || s.height == 0
}

// ScaledToFit shrinks or grows the size so that it fits inside target
// while keeping the aspect ratio.
func (s Size) ScaledToFit(target Size) Size {
	if s.IsZero() || target.IsZero() {
		return Size{}
	}
	ratio := float32(s.width) / float32(s.height)
	newWidth := int(float32(target.height) * ratio)
	newHeight := target.height

	if newWidth > target.width {
		newWidth = target.width
		newHeight = int(float32(target.width) / ratio)
	}
	return Size{width: newWidth, height: newHeight}
}
