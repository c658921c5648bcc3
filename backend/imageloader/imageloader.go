package imageloader

import (
	"fmt"
	"image"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/imagereader"
	"vincit.fi/image-viewer/common/logger"
)

// DecodeError marks a file that could not be decoded. A bad file in a
// directory pick is reported as a notice instead of ending the session.
type DecodeError struct {
	Path string
	Err  error
}

func (s *DecodeError) Error() string {
	return fmt.Sprintf("could not decode '%s': %v", s.Path, s.Err)
}

func (s *DecodeError) Unwrap() error {
	return s.Err
}

type ImageLoader struct {
	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	return &ImageLoader{}
}

func (s *ImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, &DecodeError{Path: imageFile.Path(), Err: fmt.Errorf("invalid image file")}
	}

	decodedImage, err := imagereader.LoadImage(imageFile)
	if err != nil {
		return nil, &DecodeError{Path: imageFile.Path(), Err: err}
	}
	return decodedImage, nil
}
