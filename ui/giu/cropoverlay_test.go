package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vincit.fi/image-viewer/api/apitype"
)

func TestCropOverlay_Toggle(t *testing.T) {
	a := assert.New(t)

	t.Run("Starts hidden", func(t *testing.T) {
		sut := NewCropOverlay()
		a.False(sut.IsVisible())
	})
	t.Run("Toggle shows with the default geometry", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()

		a.True(sut.IsVisible())
		a.Equal(apitype.NewCropRect(0, 0, DefaultCropSize, DefaultCropSize), sut.Rect())
	})
	t.Run("Toggle again hides", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.Toggle()

		a.False(sut.IsVisible())
	})
	t.Run("Re-showing resets a moved rectangle", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(100, 100)
		sut.Drag(50, 50)
		sut.EndDrag()

		sut.Toggle()
		sut.Toggle()
		a.Equal(apitype.NewCropRect(0, 0, DefaultCropSize, DefaultCropSize), sut.Rect())
	})
}

func TestCropOverlay_Drag(t *testing.T) {
	a := assert.New(t)

	t.Run("First drag seeds the position under the pointer", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()

		a.True(sut.BeginDrag(120, 80))
		a.True(sut.IsDragging())
		a.Equal(float32(120), sut.Rect().Left)
		a.Equal(float32(80), sut.Rect().Top)
	})
	t.Run("Moving shifts the rectangle by the pointer delta", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(100, 100)
		sut.Drag(10, -20)
		sut.EndDrag()

		a.False(sut.IsDragging())
		a.Equal(float32(110), sut.Rect().Left)
		a.Equal(float32(80), sut.Rect().Top)
	})
	t.Run("Press outside the rectangle does not start a gesture", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(0, 0)
		sut.EndDrag()

		a.False(sut.BeginDrag(500, 500))
		a.False(sut.IsDragging())
	})
	t.Run("Press on the handle resizes", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(0, 0)
		sut.EndDrag()

		a.True(sut.BeginDrag(DefaultCropSize-5, DefaultCropSize-5))
		sut.Drag(50, 100)
		sut.EndDrag()

		rect := sut.Rect()
		a.Equal(DefaultCropSize+50, rect.Width)
		a.Equal(DefaultCropSize+100, rect.Height)
		a.Equal(float32(0), rect.Left)
		a.Equal(float32(0), rect.Top)
	})
	t.Run("Resize clamps to the minimum size", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(0, 0)
		sut.EndDrag()

		sut.BeginDrag(DefaultCropSize-5, DefaultCropSize-5)
		sut.Drag(-1000, -1000)
		sut.EndDrag()

		a.Equal(apitype.MinCropSize, sut.Rect().Width)
		a.Equal(apitype.MinCropSize, sut.Rect().Height)
	})
	t.Run("Drag while hidden does nothing", func(t *testing.T) {
		sut := NewCropOverlay()
		a.False(sut.BeginDrag(10, 10))
		sut.Drag(10, 10)
		a.False(sut.IsDragging())
	})
}

func TestCropOverlay_Commit(t *testing.T) {
	a := assert.New(t)

	t.Run("Commit returns the selection and hides", func(t *testing.T) {
		sut := NewCropOverlay()
		sut.Toggle()
		sut.BeginDrag(50, 60)
		sut.EndDrag()

		rect, ok := sut.Commit()
		a.True(ok)
		a.Equal(apitype.NewCropRect(50, 60, DefaultCropSize, DefaultCropSize), rect)
		a.False(sut.IsVisible())
	})
	t.Run("Commit while hidden returns nothing", func(t *testing.T) {
		sut := NewCropOverlay()

		_, ok := sut.Commit()
		a.False(ok)
	})
}
