package api

import "errors"

// ErrPickCancelled is returned by a Chooser when the user dismisses the
// dialog. Cancellation leaves all prior state untouched.
var ErrPickCancelled = errors.New("pick cancelled")

// Chooser abstracts the native file and directory dialogs so that the
// selection service can be tested without a window system.
type Chooser interface {
	ChooseDirectory(startDir string) (string, error)
	ChooseImages() ([]string, error)
}

// SelectionService acquires image files from the user and replaces the
// session content on a successful pick.
type SelectionService interface {
	PickDirectory()
	PickFiles()
}
