package apitype

import (
	"os"
	"path/filepath"
	"strings"

	"vincit.fi/image-viewer/common/logger"
)

type ImageFile struct {
	directory string
	filename  string
	path      string
}

var (
	EmptyImageFile       = ImageFile{}
	supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
)

func NewImageFile(fileDir string, fileName string) *ImageFile {
	return &ImageFile{
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

func NewImageFileFromPath(path string) *ImageFile {
	return NewImageFile(filepath.Dir(path), filepath.Base(path))
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) String() string {
	if s == nil {
		return "ImageFile<nil>"
	}
	if s.IsValid() {
		return "ImageFile{" + s.filename + "}"
	}
	return "ImageFile<invalid>"
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

func (s *ImageFile) Extension() string {
	if s != nil {
		return strings.ToLower(filepath.Ext(s.filename))
	} else {
		return ""
	}
}

// LoadImageFiles lists the supported image files that are the immediate
// children of dir. Sub directories are not entered. The order is the
// enumeration order of the directory listing.
func LoadImageFiles(dir string) ([]*ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Scanning directory '%s'", dir)
	var imageFiles []*ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if isSupported(filepath.Ext(file.Name())) {
			imageFiles = append(imageFiles, NewImageFile(dir, file.Name()))
		}
	}
	logger.Debug.Printf("Found %d images", len(imageFiles))

	return imageFiles, nil
}

func isSupported(extension string) bool {
	return supportedFileEndings[strings.ToLower(extension)]
}
