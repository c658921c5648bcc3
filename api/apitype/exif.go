package apitype

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// ExifData holds the orientation found in an image file. Only the
// orientation is needed, the rest of the EXIF block is left untouched.
type ExifData struct {
	orientation uint8
	rotation    float64
	flipped     bool
}

var noExifData = ExifData{orientation: 1, rotation: noRotate, flipped: noHorizontalFlip}

func (s *ExifData) Orientation() uint8 {
	return s.orientation
}

func (s *ExifData) Rotation() (float64, bool) {
	return s.rotation, s.flipped
}

// LoadExifData reads the orientation tag from the file. Files without an
// EXIF block, PNG and WEBP included, resolve to the unchanged orientation.
func LoadExifData(imageFile *ImageFile) *ExifData {
	file, err := os.Open(imageFile.Path())
	if err != nil {
		return &noExifData
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		return &noExifData
	}

	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return &noExifData
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return &noExifData
	}

	angle, flip := ExifOrientationToAngleAndFlip(orientation)
	return &ExifData{
		orientation: uint8(orientation),
		rotation:    angle,
		flipped:     flip,
	}
}

func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

// ExifRotateImage reorients a decoded image to its display orientation.
func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != 0 {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		loadedImage = imaging.FlipH(loadedImage)
	}
	return loadedImage
}
