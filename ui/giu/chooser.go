package gui

import (
	"github.com/OpenDiablo2/dialog"

	"vincit.fi/image-viewer/api"
)

// DialogChooser opens the native file and directory pickers. The file
// dialog only supports picking one file at a time, so ChooseImages
// returns at most a single path.
type DialogChooser struct {
	api.Chooser
}

func NewDialogChooser() api.Chooser {
	return &DialogChooser{}
}

func (s *DialogChooser) ChooseDirectory(startDir string) (string, error) {
	builder := dialog.Directory().Title("Choose directory")
	if startDir != "" {
		builder.StartDir = startDir
	}
	directory, err := builder.Browse()
	if err == dialog.ErrCancelled {
		return "", api.ErrPickCancelled
	} else if err != nil {
		return "", err
	}
	return directory, nil
}

func (s *DialogChooser) ChooseImages() ([]string, error) {
	path, err := dialog.File().
		Title("Choose image").
		Filter("Images", "jpg", "jpeg", "png", "webp").
		Load()
	if err == dialog.ErrCancelled {
		return nil, api.ErrPickCancelled
	} else if err != nil {
		return nil, err
	}
	return []string{path}, nil
}
