package apitype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFile(t *testing.T) {
	a := assert.New(t)

	t.Run("Getters", func(t *testing.T) {
		imageFile := NewImageFile("/tmp/foo", "bar.jpg")
		a.Equal("/tmp/foo", imageFile.Directory())
		a.Equal("bar.jpg", imageFile.FileName())
		a.Equal(filepath.Join("/tmp/foo", "bar.jpg"), imageFile.Path())
		a.Equal(".jpg", imageFile.Extension())
		a.True(imageFile.IsValid())
	})
	t.Run("Extension is lower cased", func(t *testing.T) {
		a.Equal(".jpg", NewImageFile("/tmp", "a.JPG").Extension())
		a.Equal(".webp", NewImageFile("/tmp", "a.WebP").Extension())
	})
	t.Run("From path", func(t *testing.T) {
		imageFile := NewImageFileFromPath("/tmp/foo/bar.png")
		a.Equal("/tmp/foo", imageFile.Directory())
		a.Equal("bar.png", imageFile.FileName())
	})
	t.Run("Nil and empty are invalid", func(t *testing.T) {
		var nilFile *ImageFile
		a.False(nilFile.IsValid())
		a.Equal("", nilFile.Path())
		a.False(EmptyImageFile.IsValid())
	})
}

func TestLoadImageFiles(t *testing.T) {
	a := assert.New(t)

	createFiles := func(t *testing.T, names ...string) string {
		dir := t.TempDir()
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
				t.Fatal(err)
			}
		}
		return dir
	}

	t.Run("Unsupported extensions are filtered out", func(t *testing.T) {
		dir := createFiles(t, "a.png", "b.txt", "c.JPG", "d.webp")

		imageFiles, err := LoadImageFiles(dir)
		a.Nil(err)
		if a.Len(imageFiles, 3) {
			a.Equal("a.png", imageFiles[0].FileName())
			a.Equal("c.JPG", imageFiles[1].FileName())
			a.Equal("d.webp", imageFiles[2].FileName())
		}
	})
	t.Run("Sub directories are not entered", func(t *testing.T) {
		dir := createFiles(t, "a.jpg")
		if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0700); err != nil {
			t.Fatal(err)
		}

		imageFiles, err := LoadImageFiles(dir)
		a.Nil(err)
		a.Len(imageFiles, 1)
	})
	t.Run("Empty directory gives an empty list", func(t *testing.T) {
		imageFiles, err := LoadImageFiles(t.TempDir())
		a.Nil(err)
		a.Empty(imageFiles)
	})
	t.Run("Missing directory is an error", func(t *testing.T) {
		_, err := LoadImageFiles("/does-not-exist")
		a.NotNil(err)
	})
}
