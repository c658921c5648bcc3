package selection

import (
	"errors"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/backend/database"
	"vincit.fi/image-viewer/common"
	"vincit.fi/image-viewer/common/logger"
)

// Service acquires image files through the native choosers and replaces
// the session content on a successful pick. A cancelled dialog or an
// empty directory leaves all prior state untouched.
type Service struct {
	sender      api.Sender
	chooser     api.Chooser
	recentStore *database.RecentStore
	initialDir  string

	api.SelectionService
}

func NewSelectionService(params *common.Params, sender api.Sender, chooser api.Chooser, recentStore *database.RecentStore) *Service {
	return &Service{
		sender:      sender,
		chooser:     chooser,
		recentStore: recentStore,
		initialDir:  params.InitialDir(),
	}
}

func (s *Service) PickDirectory() {
	dir, err := s.chooser.ChooseDirectory(s.startDir())
	if errors.Is(err, api.ErrPickCancelled) {
		logger.Debug.Print("Directory pick cancelled")
		return
	}
	if err != nil {
		s.sender.SendError("Error while choosing directory", err)
		return
	}

	s.OpenDirectory(dir)
}

// OpenDirectory behaves like a completed directory pick. Also used for
// the optional directory argument at startup.
func (s *Service) OpenDirectory(dir string) {
	imageFiles, err := apitype.LoadImageFiles(dir)
	if err != nil {
		s.sender.SendError("Error while reading directory", err)
		return
	}
	if len(imageFiles) == 0 {
		logger.Info.Printf("No images found in '%s'", dir)
		return
	}

	s.rememberDirectory(dir)
	s.sender.SendCommandToTopic(api.ImageFilesUpdated, &api.SetImagesCommand{
		ImageFiles: imageFiles,
	})
}

func (s *Service) PickFiles() {
	paths, err := s.chooser.ChooseImages()
	if errors.Is(err, api.ErrPickCancelled) {
		logger.Debug.Print("File pick cancelled")
		return
	}
	if err != nil {
		s.sender.SendError("Error while choosing files", err)
		return
	}
	if len(paths) == 0 {
		return
	}

	imageFiles := make([]*apitype.ImageFile, 0, len(paths))
	for _, path := range paths {
		imageFiles = append(imageFiles, apitype.NewImageFileFromPath(path))
	}

	s.rememberDirectory(imageFiles[0].Directory())
	s.sender.SendCommandToTopic(api.ImageFilesUpdated, &api.SetImagesCommand{
		ImageFiles: imageFiles,
	})
}

// startDir resolves the chooser seed: the INITIAL_DIR environment value
// wins, then the most recently opened directory.
func (s *Service) startDir() string {
	if s.initialDir != "" {
		return s.initialDir
	}
	if s.recentStore == nil {
		return ""
	}
	if recent, err := s.recentStore.MostRecent(); err == nil {
		return recent
	}
	return ""
}

func (s *Service) rememberDirectory(dir string) {
	if s.recentStore == nil {
		return
	}
	if err := s.recentStore.Add(dir); err != nil {
		logger.Warn.Printf("Could not store recent directory '%s': %s", dir, err)
	}
}
