package api

import (
	"image"

	"vincit.fi/image-viewer/api/apitype"
)

type ErrorCommand struct {
	Message string

	apitype.Command
}

type DeviceFoundCommand struct {
	DeviceName string

	apitype.Command
}

// UpdateImageCommand carries the decoded frame for the current image. The
// image is the in-memory value which may hold an uncommitted transform.
type UpdateImageCommand struct {
	Image     image.Image
	ImageFile *apitype.ImageFile
	Index     int
	Total     int

	apitype.Command
}

type Gui interface {
	SetCurrentImage(*UpdateImageCommand)
	ShowError(*ErrorCommand)
	DeviceFound(*DeviceFoundCommand)
	CastReady()
	CastFindDone()
	Run()
}
