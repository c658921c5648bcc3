package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func initializeSut() *RecentStore {
	database := NewInMemoryDatabase()
	return NewRecentStore(database)
}

func TestRecentStore(t *testing.T) {
	a := assert.New(t)

	t.Run("Most recent is the last added", func(t *testing.T) {
		sut := initializeSut()

		a.Nil(sut.Add("/tmp/first"))
		time.Sleep(time.Millisecond)
		a.Nil(sut.Add("/tmp/second"))

		recent, err := sut.MostRecent()
		a.Nil(err)
		a.Equal("/tmp/second", recent)
	})
	t.Run("Adding again bumps an existing path", func(t *testing.T) {
		sut := initializeSut()

		a.Nil(sut.Add("/tmp/first"))
		time.Sleep(time.Millisecond)
		a.Nil(sut.Add("/tmp/second"))
		time.Sleep(time.Millisecond)
		a.Nil(sut.Add("/tmp/first"))

		recent, err := sut.MostRecent()
		a.Nil(err)
		a.Equal("/tmp/first", recent)

		paths, err := sut.List(10)
		a.Nil(err)
		a.Equal([]string{"/tmp/first", "/tmp/second"}, paths)
	})
	t.Run("List honors the limit", func(t *testing.T) {
		sut := initializeSut()

		a.Nil(sut.Add("/tmp/first"))
		time.Sleep(time.Millisecond)
		a.Nil(sut.Add("/tmp/second"))
		time.Sleep(time.Millisecond)
		a.Nil(sut.Add("/tmp/third"))

		paths, err := sut.List(2)
		a.Nil(err)
		a.Equal([]string{"/tmp/third", "/tmp/second"}, paths)
	})
	t.Run("Empty store has no most recent", func(t *testing.T) {
		sut := initializeSut()

		_, err := sut.MostRecent()
		a.NotNil(err)
	})
}
