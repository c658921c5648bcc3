package viewer

import (
	"image"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/backend/transform"
	"vincit.fi/image-viewer/common/logger"
)

// Service owns the viewing session: the picked image files, the current
// index and the decoded image. Rotations and crops only replace the
// in-memory image. Swiping away and back re-decodes from disk which
// discards any uncommitted transform.
type Service struct {
	sender      api.Sender
	imageLoader api.ImageLoader

	imageFiles []*apitype.ImageFile
	index      int
	current    image.Image

	api.ImageService
}

func NewImageService(sender api.Sender, imageLoader api.ImageLoader) *Service {
	return &Service{
		sender:      sender,
		imageLoader: imageLoader,
		index:       0,
	}
}

// SetImageFiles replaces the session content wholesale. An empty list is
// valid: the session goes back to showing nothing and later navigation
// and transform requests are ignored.
func (s *Service) SetImageFiles(command *api.SetImagesCommand) {
	s.imageFiles = command.ImageFiles
	s.index = 0
	s.current = nil

	if len(s.imageFiles) == 0 {
		logger.Debug.Print("Image list cleared")
		return
	}

	s.loadCurrent()
	s.sendCurrent()
}

func (s *Service) ImageFiles() []*apitype.ImageFile {
	return s.imageFiles
}

// RequestImages re-sends the current state without mutating anything.
func (s *Service) RequestImages() {
	if s.current == nil {
		return
	}
	s.sendCurrent()
}

func (s *Service) RequestNextImage() {
	if len(s.imageFiles) == 0 {
		return
	}
	s.index = s.nextIndex()
	s.loadCurrent()
	s.sendCurrent()
}

func (s *Service) RequestPreviousImage() {
	if len(s.imageFiles) == 0 {
		return
	}
	s.index = s.previousIndex()
	s.loadCurrent()
	s.sendCurrent()
}

func (s *Service) RequestRotateLeft() {
	if s.current == nil {
		return
	}
	s.current = transform.RotateLeft(s.current)
	s.sendCurrent()
}

func (s *Service) RequestRotateRight() {
	if s.current == nil {
		return
	}
	s.current = transform.RotateRight(s.current)
	s.sendCurrent()
}

// RequestCrop replaces the current image with the cropped area. There is
// no undo. The file on disk stays untouched so swiping away and back
// restores the original.
func (s *Service) RequestCrop(command *api.CropCommand) {
	if s.current == nil {
		return
	}
	s.current = transform.Crop(s.current, command.Rect, command.DisplaySize)
	s.sendCurrent()
}

func (s *Service) Close() {
	logger.Info.Print("Shutting down viewer")
}

// Private API

// nextIndex wraps from the last image back to the first.
func (s *Service) nextIndex() int {
	if s.index >= len(s.imageFiles)-1 {
		return 0
	}
	return s.index + 1
}

// previousIndex wraps from the first image to the last.
func (s *Service) previousIndex() int {
	if s.index <= 0 {
		return len(s.imageFiles) - 1
	}
	return s.index - 1
}

func (s *Service) loadCurrent() {
	imageFile := s.imageFiles[s.index]
	decodedImage, err := s.imageLoader.LoadImage(imageFile)
	if err != nil {
		s.sender.SendError("Error while loading image", err)
		s.current = nil
		return
	}
	s.current = decodedImage
}

func (s *Service) sendCurrent() {
	if s.current == nil {
		return
	}
	s.sender.SendCommandToTopic(api.ImageCurrentUpdated, &api.UpdateImageCommand{
		Image:     s.current,
		ImageFile: s.imageFiles[s.index],
		Index:     s.index,
		Total:     len(s.imageFiles),
	})
}
