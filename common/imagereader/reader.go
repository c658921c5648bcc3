package imagereader

import (
	"image"
	"os"

	_ "image/png"

	_ "golang.org/x/image/webp"

	"vincit.fi/image-viewer/api/apitype"
)

// LoadImage decodes the file from disk and reorients it to its EXIF
// display orientation. JPEG goes through libjpeg, PNG and WEBP through
// the registered stdlib decoders.
func LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	exifData := apitype.LoadExifData(imageFile)
	rotation, flipped := exifData.Rotation()

	var decodedImage image.Image
	var err error
	switch imageFile.Extension() {
	case ".jpg", ".jpeg":
		decodedImage, err = loadJpeg(imageFile.Path())
	default:
		decodedImage, err = loadGeneric(imageFile.Path())
	}
	if err != nil {
		return nil, err
	}

	return apitype.ExifRotateImage(decodedImage, rotation, flipped), nil
}

func loadGeneric(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decodedImage, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return decodedImage, nil
}
