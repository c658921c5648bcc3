package api

type Topic string

const (
	// Selection
	DirectoryPickRequested = Topic("directory-pick-requested")
	FilePickRequested      = Topic("file-pick-requested")
	ImageFilesUpdated      = Topic("image-files-updated")

	// Navigation
	ImageRequestNext     = Topic("image-request-next")
	ImageRequestPrevious = Topic("image-request-previous")
	ImageRequestCurrent  = Topic("image-request-current")

	// Transforms
	ImageRequestRotateLeft  = Topic("image-request-rotate-left")
	ImageRequestRotateRight = Topic("image-request-rotate-right")
	ImageRequestCrop        = Topic("image-request-crop")

	// State updates
	ImageCurrentUpdated = Topic("image-current-updated")

	// Casting
	CastDeviceSearch      = Topic("cast-device-search")
	CastDeviceSelect      = Topic("cast-device-select")
	CastDeviceFound       = Topic("cast-device-found")
	CastDevicesSearchDone = Topic("cast-devices-search-done")
	CastReady             = Topic("cast-ready")
	CastStop              = Topic("cast-stop")

	ShowError = Topic("show-error")
)
