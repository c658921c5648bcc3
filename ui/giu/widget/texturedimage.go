package widget

import (
	"image"

	"github.com/AllenDang/giu"
	"github.com/nfnt/resize"

	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/imagereader"
)

// TexturedImage uploads a decoded image as a giu texture. The upload
// happens on a goroutine because texture creation blocks on the render
// thread; the previous texture stays visible until the new one is ready.
type TexturedImage struct {
	Width  float32
	Height float32
	Ratio  float32

	Texture    *giu.Texture
	oldTexture *giu.Texture

	decodedImage   image.Image
	lastWidth      int
	lastHeight     int
	newImageLoaded bool
}

func NewEmptyTexturedImage() *TexturedImage {
	return &TexturedImage{}
}

func (s *TexturedImage) HasImage() bool {
	return s.decodedImage != nil
}

func (s *TexturedImage) NativeSize() apitype.Size {
	return apitype.SizeOfImage(s.decodedImage)
}

func (s *TexturedImage) ChangeImage(decodedImage image.Image) {
	s.oldTexture = s.Texture
	s.newImageLoaded = false

	s.decodedImage = decodedImage

	size := apitype.SizeOfImage(decodedImage)
	s.Width = float32(size.Width())
	s.Height = float32(size.Height())
	if s.Height > 0 {
		s.Ratio = s.Width / s.Height
	} else {
		s.Ratio = 1
	}

	s.lastWidth = -1
	s.lastHeight = -1
}

// LoadImageAsTexture makes sure a texture no larger than the given target
// exists for the current image and returns it. Oversized images are
// downscaled before upload so the GPU never holds more than the window
// can show.
func (s *TexturedImage) LoadImageAsTexture(width float32, height float32) *giu.Texture {
	if s.decodedImage == nil {
		return nil
	}

	if s.newImageLoaded {
		if s.Texture != nil && int(width) == s.lastWidth && int(height) == s.lastHeight {
			return s.Texture
		}
	}

	s.lastWidth = int(width)
	s.lastHeight = int(height)

	scaled := s.decodedImage
	nativeSize := apitype.SizeOfImage(s.decodedImage)
	if nativeSize.Width() > s.lastWidth || nativeSize.Height() > s.lastHeight {
		fitSize := nativeSize.ScaledToFit(apitype.SizeOf(s.lastWidth, s.lastHeight))
		scaled = resize.Resize(uint(fitSize.Width()), uint(fitSize.Height()), s.decodedImage, resize.Bilinear)
	}

	rgba := imagereader.ConvertToRgba(scaled)
	giu.NewTextureFromRgba(rgba, func(t *giu.Texture) {
		s.Texture = t
		s.newImageLoaded = true
		giu.Update()
	})
	return s.Texture
}
