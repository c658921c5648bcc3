package backend

import (
	"os/user"
	"path/filepath"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/backend/caster"
	"vincit.fi/image-viewer/backend/database"
	"vincit.fi/image-viewer/backend/imageloader"
	"vincit.fi/image-viewer/backend/selection"
	"vincit.fi/image-viewer/backend/viewer"
	"vincit.fi/image-viewer/common"
	"vincit.fi/image-viewer/common/event"
	"vincit.fi/image-viewer/common/logger"
)

type Stores struct {
	RecentStore *database.RecentStore

	homeDirDb *database.Database
}

func (s *Stores) Close() {
	s.homeDirDb.Close()
}

type Services struct {
	ImageService     api.ImageService
	SelectionService *selection.Service
	CasterInstance   api.Caster
	ImageLoader      api.ImageLoader
}

func (s *Services) Close() {
	defer s.ImageService.Close()
	defer s.CasterInstance.Close()
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the configuration DB in the user's home
// directory. The picked image directories are never written to.
func InitializeStores(databaseFileName string) *Stores {
	logger.Debug.Printf("Initialize database...")
	homeDirDb := database.NewDatabase()
	if currentUser, err := user.Current(); err != nil {
		logger.Error.Fatal("Cannot load user")
	} else {
		dbDir := filepath.Join(currentUser.HomeDir, common.ImageViewerDir)
		if err := homeDirDb.InitializeForDirectory(dbDir, databaseFileName); err != nil {
			logger.Error.Fatal("Error opening database ", err)
		} else if err := homeDirDb.Migrate(); err != nil {
			logger.Error.Fatal("Error while running migrations ", err)
		}
	}

	stores := &Stores{
		RecentStore: database.NewRecentStore(homeDirDb),
		homeDirDb:   homeDirDb,
	}
	logger.Debug.Printf("Stores and database initialized")
	return stores
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers, chooser api.Chooser) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	services := &Services{
		ImageService:     viewer.NewImageService(brokers.Broker, imageLoader),
		SelectionService: selection.NewSelectionService(params, brokers.Broker, chooser, stores.RecentStore),
		CasterInstance:   caster.NewCaster(params, brokers.Broker),
		ImageLoader:      imageLoader,
	}
	logger.Debug.Printf("Services initialized")
	return services
}
