package widget

import (
	"image"

	"github.com/AllenDang/giu"

	"vincit.fi/image-viewer/api/apitype"
)

// ResizableImageWidget renders the image scaled to fit the available
// region, centered with dummy spacers. It records where and how large the
// image was drawn so overlay geometry can be mapped back to image pixels.
type ResizableImageWidget struct {
	texturedImage *TexturedImage

	LastOrigin image.Point
	LastSize   apitype.Size

	giu.ImageWidget
}

func ResizableImage(texturedImage *TexturedImage) *ResizableImageWidget {
	return &ResizableImageWidget{
		texturedImage: texturedImage,
		ImageWidget:   *giu.Image(texturedImage.Texture),
	}
}

func (s *ResizableImageWidget) Build() {
	maxW, maxH := giu.GetAvailableRegion()
	newW := maxW
	newH := newW / s.texturedImage.Ratio

	if newH > maxH {
		newW = maxH * s.texturedImage.Ratio
		newH = maxH
	}

	offsetW := (maxW - newW) / 2.0
	offsetH := (maxH - newH) / 2.0

	cursor := giu.GetCursorScreenPos()
	s.LastOrigin = image.Pt(cursor.X+int(offsetW), cursor.Y+int(offsetH))
	s.LastSize = apitype.SizeOf(int(newW), int(newH))

	texture := s.texturedImage.LoadImageAsTexture(newW, newH)
	s.ImageWidget = *giu.Image(texture)
	s.ImageWidget.Size(newW, newH)

	dummyV := giu.Dummy(120, offsetH)
	dummyH := giu.Dummy(offsetW, 20)

	giu.Column(
		dummyV,
		giu.Row(dummyH, &s.ImageWidget),
	).Build()
}
