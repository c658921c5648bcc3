package transform

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"vincit.fi/image-viewer/api/apitype"
)

// RotateLeft rotates 90° counter-clockwise. The canvas expands to the
// rotated bounding box, nothing is cropped away.
func RotateLeft(img image.Image) image.Image {
	return imaging.Rotate90(img)
}

// RotateRight rotates 90° clockwise.
func RotateRight(img image.Image) image.Image {
	return imaging.Rotate270(img)
}

// Crop cuts the image to the overlay rectangle. The rectangle is given in
// the coordinates of the displayed image and is scaled into pixel
// coordinates before cutting.
func Crop(img image.Image, rect apitype.CropRect, displaySize apitype.Size) image.Image {
	imageRect := rect.ToImageRect(displaySize, apitype.SizeOfImage(img))
	return imaging.Crop(img, imageRect)
}

// EncodeJpeg renders the image into a self-contained JPEG payload.
func EncodeJpeg(img image.Image) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := imaging.Encode(buffer, img, imaging.JPEG); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
