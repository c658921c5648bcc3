package api

import (
	"vincit.fi/image-viewer/api/apitype"
)

type SetImagesCommand struct {
	ImageFiles []*apitype.ImageFile

	apitype.Command
}

// CropCommand maps the overlay geometry to the image through the size at
// which the image was displayed when the crop was committed.
type CropCommand struct {
	Rect        apitype.CropRect
	DisplaySize apitype.Size

	apitype.Command
}

// ImageService owns the viewing session: the picked image files, the
// current index and the decoded image with any uncommitted transforms.
type ImageService interface {
	SetImageFiles(*SetImagesCommand)

	RequestImages()
	RequestNextImage()
	RequestPreviousImage()

	RequestRotateLeft()
	RequestRotateRight()
	RequestCrop(*CropCommand)

	ImageFiles() []*apitype.ImageFile

	Close()
}
