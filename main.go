package main

import (
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/backend"
	"vincit.fi/image-viewer/common"
	"vincit.fi/image-viewer/common/logger"
	gui "vincit.fi/image-viewer/ui/giu"
)

const eventBusQueueSize = 1000

func main() {
	params := common.ParseParams()

	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	stores := backend.InitializeStores(common.DatabaseFileName)
	defer stores.Close()

	chooser := gui.NewDialogChooser()
	services := backend.InitializeServices(params, stores, brokers, chooser)
	defer services.Close()

	ui := gui.NewUi(params, brokers.Broker)

	// Selection
	brokers.Broker.Subscribe(api.DirectoryPickRequested, services.SelectionService.PickDirectory)
	brokers.Broker.Subscribe(api.FilePickRequested, services.SelectionService.PickFiles)
	brokers.Broker.Subscribe(api.ImageFilesUpdated, services.ImageService.SetImageFiles)

	// Navigation
	brokers.Broker.Subscribe(api.ImageRequestNext, services.ImageService.RequestNextImage)
	brokers.Broker.Subscribe(api.ImageRequestPrevious, services.ImageService.RequestPreviousImage)
	brokers.Broker.Subscribe(api.ImageRequestCurrent, services.ImageService.RequestImages)

	// Transforms
	brokers.Broker.Subscribe(api.ImageRequestRotateLeft, services.ImageService.RequestRotateLeft)
	brokers.Broker.Subscribe(api.ImageRequestRotateRight, services.ImageService.RequestRotateRight)
	brokers.Broker.Subscribe(api.ImageRequestCrop, services.ImageService.RequestCrop)

	// State updates
	brokers.Broker.Subscribe(api.ImageCurrentUpdated, ui.SetCurrentImage)
	brokers.Broker.Subscribe(api.ImageCurrentUpdated, services.CasterInstance.CastImage)
	brokers.Broker.Subscribe(api.ShowError, ui.ShowError)

	// Casting
	brokers.Broker.Subscribe(api.CastDeviceSearch, services.CasterInstance.FindDevices)
	brokers.Broker.Subscribe(api.CastDeviceSelect, services.CasterInstance.SelectDevice)
	brokers.Broker.Subscribe(api.CastDeviceFound, ui.DeviceFound)
	brokers.Broker.Subscribe(api.CastDevicesSearchDone, ui.CastFindDone)
	brokers.Broker.Subscribe(api.CastReady, ui.CastReady)
	brokers.Broker.Subscribe(api.CastStop, services.CasterInstance.StopCasting)

	if rootPath := params.RootPath(); rootPath != "" {
		go services.SelectionService.OpenDirectory(rootPath)
	}

	ui.Run()
}
