package database

import (
	"os"
	"path/filepath"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"

	"vincit.fi/image-viewer/common/logger"
)

type Database struct {
	session db.Session
	dbPath  string
}

func NewDatabase() *Database {
	return &Database{}
}

func NewInMemoryDatabase() *Database {
	logger.Info.Printf("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "memory.db",
		Options: map[string]string{
			"mode": "memory",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}

	database := Database{session: session}
	if err := database.Migrate(); err != nil {
		logger.Error.Fatal("Error while running migrations ", err)
	}
	return &database
}

// InitializeForDirectory opens the database under the given directory,
// creating the directory when needed.
func (s *Database) InitializeForDirectory(directory string, file string) error {
	if err := os.MkdirAll(directory, 0700); err != nil {
		return err
	}

	s.dbPath = filepath.Join(directory, file)
	logger.Info.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}

	s.session = session
	return nil
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) Migrate() error {
	logger.Debug.Print("Running migrations")
	_, err := s.session.SQL().Exec(`
		CREATE TABLE IF NOT EXISTS recent_directory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			opened_at TIMESTAMP NOT NULL
		)
	`)
	return err
}

func (s *Database) Close() {
	if s.session != nil {
		logger.Debug.Print("Closing database")
		_ = s.session.Close()
	}
}
