package database

import (
	"time"

	"github.com/upper/db/v4"

	"vincit.fi/image-viewer/common/logger"
)

type RecentDirectory struct {
	Id       int64     `db:"id,omitempty"`
	Path     string    `db:"path"`
	OpenedAt time.Time `db:"opened_at"`
}

// RecentStore remembers which directories were opened so that the next
// directory chooser can start from the previous place.
type RecentStore struct {
	database   *Database
	collection db.Collection
}

func NewRecentStore(database *Database) *RecentStore {
	return &RecentStore{
		database: database,
	}
}

func (s *RecentStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("recent_directory")
	}
	return s.collection
}

// Add records the directory as the most recent one. An already known
// path only gets its timestamp bumped.
func (s *RecentStore) Add(path string) error {
	logger.Debug.Printf("Remembering directory '%s'", path)
	existing := s.getCollection().Find(db.Cond{"path": path})
	if count, err := existing.Count(); err != nil {
		return err
	} else if count > 0 {
		return existing.Update(&RecentDirectory{
			Path:     path,
			OpenedAt: time.Now(),
		})
	}

	_, err := s.getCollection().Insert(&RecentDirectory{
		Path:     path,
		OpenedAt: time.Now(),
	})
	return err
}

func (s *RecentStore) MostRecent() (string, error) {
	var recent RecentDirectory
	if err := s.getCollection().Find().OrderBy("-opened_at").One(&recent); err != nil {
		return "", err
	}
	return recent.Path, nil
}

func (s *RecentStore) List(limit int) ([]string, error) {
	var entries []RecentDirectory
	if err := s.getCollection().Find().OrderBy("-opened_at").Limit(limit).All(&entries); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	return paths, nil
}
