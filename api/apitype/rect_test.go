package apitype

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCropRect_Contains(t *testing.T) {
	a := assert.New(t)

	rect := NewCropRect(10, 20, 100, 50)

	t.Run("Inside", func(t *testing.T) {
		a.True(rect.Contains(10, 20))
		a.True(rect.Contains(50, 40))
		a.True(rect.Contains(109, 69))
	})
	t.Run("Outside", func(t *testing.T) {
		a.False(rect.Contains(9, 20))
		a.False(rect.Contains(10, 19))
		a.False(rect.Contains(110, 40))
		a.False(rect.Contains(50, 70))
	})
}

func TestCropRect_HandleRect(t *testing.T) {
	a := assert.New(t)

	rect := NewCropRect(10, 20, 100, 50)
	handle := rect.HandleRect()

	t.Run("Anchored at the bottom-right corner", func(t *testing.T) {
		a.Equal(float32(90), handle.Left)
		a.Equal(float32(50), handle.Top)
		a.Equal(MinCropSize, handle.Width)
		a.Equal(MinCropSize, handle.Height)
	})
	t.Run("Corner press hits the handle", func(t *testing.T) {
		a.True(handle.Contains(109, 69))
		a.False(handle.Contains(89, 49))
	})
}

func TestCropRect_MovedBy(t *testing.T) {
	a := assert.New(t)

	rect := NewCropRect(10, 20, 100, 50)

	t.Run("Moves without changing the size", func(t *testing.T) {
		moved := rect.MovedBy(5, -10)
		a.Equal(NewCropRect(15, 10, 100, 50), moved)
	})
	t.Run("Moving is not clamped to the image", func(t *testing.T) {
		moved := rect.MovedBy(-100, -100)
		a.Equal(NewCropRect(-90, -80, 100, 50), moved)
	})
}

func TestCropRect_ResizedBy(t *testing.T) {
	a := assert.New(t)

	rect := NewCropRect(10, 20, 100, 50)

	t.Run("Grows from the bottom-right corner", func(t *testing.T) {
		resized := rect.ResizedBy(10, 20)
		a.Equal(NewCropRect(10, 20, 110, 70), resized)
	})
	t.Run("Shrinking clamps to the handle size", func(t *testing.T) {
		resized := rect.ResizedBy(-200, -200)
		a.Equal(MinCropSize, resized.Width)
		a.Equal(MinCropSize, resized.Height)
		a.Equal(float32(10), resized.Left)
		a.Equal(float32(20), resized.Top)
	})
}

func TestCropRect_ToImageRect(t *testing.T) {
	a := assert.New(t)

	t.Run("Same display and native size maps one to one", func(t *testing.T) {
		rect := NewCropRect(50, 50, 50, 50).
			ToImageRect(SizeOf(200, 200), SizeOf(200, 200))
		a.Equal(image.Rect(50, 50, 100, 100), rect)
	})
	t.Run("Display coordinates scale to image pixels", func(t *testing.T) {
		rect := NewCropRect(25, 25, 25, 25).
			ToImageRect(SizeOf(100, 100), SizeOf(200, 200))
		a.Equal(image.Rect(50, 50, 100, 100), rect)
	})
	t.Run("Area past the edge is clipped to the image", func(t *testing.T) {
		rect := NewCropRect(150, 150, 100, 100).
			ToImageRect(SizeOf(200, 200), SizeOf(200, 200))
		a.Equal(image.Rect(150, 150, 200, 200), rect)
	})
	t.Run("Area fully outside the image is empty", func(t *testing.T) {
		rect := NewCropRect(300, 300, 50, 50).
			ToImageRect(SizeOf(200, 200), SizeOf(200, 200))
		a.True(rect.Empty())
	})
	t.Run("Zero display size applies coordinates as-is", func(t *testing.T) {
		rect := NewCropRect(10, 10, 50, 50).
			ToImageRect(Size{}, SizeOf(200, 200))
		a.Equal(image.Rect(10, 10, 60, 60), rect)
	})
}
