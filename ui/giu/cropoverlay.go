package gui

import (
	"vincit.fi/image-viewer/api/apitype"
)

const DefaultCropSize = float32(300)

type overlayMode int

const (
	overlayHidden overlayMode = iota
	overlayVisible
	overlayMoving
	overlayResizing
)

// CropOverlay is the draggable crop rectangle drawn over the image. All
// coordinates are in display space relative to the top left corner of the
// rendered image. The overlay stays unpositioned until the first drag
// touches it, at which point it jumps under the pointer.
type CropOverlay struct {
	mode       overlayMode
	rect       apitype.CropRect
	positioned bool
}

func NewCropOverlay() *CropOverlay {
	return &CropOverlay{mode: overlayHidden}
}

func (s *CropOverlay) IsVisible() bool {
	return s.mode != overlayHidden
}

func (s *CropOverlay) IsDragging() bool {
	return s.mode == overlayMoving || s.mode == overlayResizing
}

func (s *CropOverlay) Rect() apitype.CropRect {
	return s.rect
}

// Toggle shows the overlay with the default geometry or hides it. Showing
// always resets the rectangle so a stale selection never resurfaces.
func (s *CropOverlay) Toggle() {
	if s.mode == overlayHidden {
		s.mode = overlayVisible
		s.rect = apitype.CropRect{Left: 0, Top: 0, Width: DefaultCropSize, Height: DefaultCropSize}
		s.positioned = false
	} else {
		s.Hide()
	}
}

func (s *CropOverlay) Hide() {
	s.mode = overlayHidden
	s.positioned = false
}

// BeginDrag starts a move or resize gesture depending on where the pointer
// landed. The bottom right handle wins over the body when both contain the
// point. Returns false when the press misses the overlay entirely.
func (s *CropOverlay) BeginDrag(x float32, y float32) bool {
	if s.mode != overlayVisible {
		return false
	}
	if !s.positioned {
		s.rect.Left = x
		s.rect.Top = y
		s.positioned = true
		s.mode = overlayMoving
		return true
	}
	if s.rect.HandleRect().Contains(x, y) {
		s.mode = overlayResizing
		return true
	}
	if s.rect.Contains(x, y) {
		s.mode = overlayMoving
		return true
	}
	return false
}

func (s *CropOverlay) Drag(deltaX float32, deltaY float32) {
	switch s.mode {
	case overlayMoving:
		s.rect = s.rect.MovedBy(deltaX, deltaY)
	case overlayResizing:
		s.rect = s.rect.ResizedBy(deltaX, deltaY)
	}
}

func (s *CropOverlay) EndDrag() {
	if s.IsDragging() {
		s.mode = overlayVisible
	}
}

// Commit returns the selected rectangle and hides the overlay. The second
// return value is false when no selection is active.
func (s *CropOverlay) Commit() (apitype.CropRect, bool) {
	if s.mode == overlayHidden {
		return apitype.CropRect{}, false
	}
	rect := s.rect
	s.Hide()
	return rect, true
}
