package api

import (
	"image"

	"vincit.fi/image-viewer/api/apitype"
)

// ImageLoader decodes an image file from disk. Every call decodes afresh,
// there is no cache behind this interface.
type ImageLoader interface {
	LoadImage(imageFile *apitype.ImageFile) (image.Image, error)
}
