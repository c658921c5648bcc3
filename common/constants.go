package common

const (
	AppName = "Image Viewer"

	// ImageViewerDir is the per-user configuration directory under the
	// home directory. The picked directories themselves are never
	// written to.
	ImageViewerDir   = ".image-viewer"
	DatabaseFileName = "viewer.db"
)
