package gui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/AllenDang/giu"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/ui/giu/widget"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

var (
	cropBorderColor = color.RGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF}
	cropHandleColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xC0}
)

type Ui struct {
	win    *giu.MasterWindow
	sender api.Sender

	currentImageTexture *widget.TexturedImage
	imageView           *widget.ResizableImageWidget
	currentImageFile    *apitype.ImageFile
	index               int
	total               int

	overlay      *CropOverlay
	lastMousePos image.Point

	devices        []string
	findingDevices bool
	casting        bool
	selectedDevice string
	oldWidth       int
	oldHeight      int

	api.Gui
}

func NewUi(params *common.Params, broker api.Sender) api.Gui {
	gui := Ui{
		win:                 giu.NewMasterWindow(common.AppName, defaultWindowWidth, defaultWindowHeight, 0),
		sender:              broker,
		currentImageTexture: widget.NewEmptyTexturedImage(),
		overlay:             NewCropOverlay(),
	}
	gui.imageView = widget.ResizableImage(gui.currentImageTexture)
	return &gui
}

func (s *Ui) Run() {
	s.win.Run(func() {
		newWidth, newHeight := s.win.GetSize()
		if newWidth != s.oldWidth || newHeight != s.oldHeight {
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Window size changed from (%d x %d) to (%d x %d)",
					s.oldWidth, s.oldHeight, newWidth, newHeight)
			}
			s.oldWidth = newWidth
			s.oldHeight = newHeight
		}

		renderStart := time.Now()

		giu.SingleWindow().
			Layout(
				s.topActionRow(),
				giu.Separator(),
				s.imageArea(),
				giu.Separator(),
				s.bottomActionRow(),
				giu.PrepareMsgbox(),
			)

		renderTime := time.Since(renderStart)
		if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		} else if logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		}

		s.handleKeyPress()
	})
}

func (s *Ui) topActionRow() giu.Widget {
	openImagesButton := giu.Button("Open Images").OnClick(func() {
		s.sender.SendToTopic(api.FilePickRequested)
	}).Size(120, 30)
	openDirectoryButton := giu.Button("Open Directory").OnClick(func() {
		s.sender.SendToTopic(api.DirectoryPickRequested)
	}).Size(120, 30)

	// Saving is not supported; the control exists to show that the
	// transforms are view-only.
	saveButton := giu.Button("Save Image").Size(120, 30).Disabled(true)

	widgets := []giu.Widget{
		openImagesButton,
		openDirectoryButton,
		saveButton,
		giu.Label(s.statusText()),
	}
	widgets = append(widgets, s.castWidgets()...)
	return giu.Row(widgets...)
}

func (s *Ui) statusText() string {
	if s.total == 0 {
		return "No files selected"
	}
	return fmt.Sprintf("%d / %d  %s", s.index+1, s.total, s.currentImageFile.FileName())
}

func (s *Ui) castWidgets() []giu.Widget {
	var widgets []giu.Widget
	if s.findingDevices {
		widgets = append(widgets, giu.Label("Searching devices..."))
	}
	for _, device := range s.devices {
		deviceName := device
		widgets = append(widgets, giu.Button(deviceName).OnClick(func() {
			s.selectedDevice = deviceName
			s.sender.SendCommandToTopic(api.CastDeviceSelect, &api.SelectDeviceCommand{
				Name:           deviceName,
				ShowBackground: true,
			})
		}).Size(120, 30))
	}
	if s.casting {
		widgets = append(widgets, giu.Label(fmt.Sprintf("Casting to %s", s.selectedDevice)))
	}
	return widgets
}

func (s *Ui) imageArea() giu.Widget {
	if !s.currentImageTexture.HasImage() {
		return giu.Row(
			giu.Dummy(giu.Auto, -40),
		)
	}
	return giu.Custom(func() {
		s.imageView.Build()
		s.handleCropMouse()
		s.drawCropOverlay()
	})
}

func (s *Ui) bottomActionRow() giu.Widget {
	hasImage := s.currentImageTexture.HasImage()

	previousButton := giu.Button("Previous").OnClick(func() {
		s.sender.SendToTopic(api.ImageRequestPrevious)
	}).Size(120, 30).Disabled(s.total < 2)
	nextButton := giu.Button("Next").OnClick(func() {
		s.sender.SendToTopic(api.ImageRequestNext)
	}).Size(120, 30).Disabled(s.total < 2)

	rotateLeftButton := giu.Button("Rotate Left").OnClick(func() {
		s.sender.SendToTopic(api.ImageRequestRotateLeft)
	}).Size(120, 30).Disabled(!hasImage)
	rotateRightButton := giu.Button("Rotate Right").OnClick(func() {
		s.sender.SendToTopic(api.ImageRequestRotateRight)
	}).Size(120, 30).Disabled(!hasImage)

	cropLabel := "Crop"
	if s.overlay.IsVisible() {
		cropLabel = "Cancel Crop"
	}
	cropButton := giu.Button(cropLabel).OnClick(func() {
		s.overlay.Toggle()
	}).Size(120, 30).Disabled(!hasImage)
	applyCropButton := giu.Button("Apply Crop").OnClick(func() {
		s.commitCrop()
	}).Size(120, 30).Disabled(!s.overlay.IsVisible())

	return giu.Row(
		previousButton,
		rotateLeftButton,
		cropButton,
		applyCropButton,
		rotateRightButton,
		giu.Dummy(-120, 30),
		nextButton,
	)
}

// handleCropMouse turns raw mouse state into overlay gestures. Positions
// are translated to display coordinates relative to the rendered image.
func (s *Ui) handleCropMouse() {
	if !s.overlay.IsVisible() {
		return
	}

	mousePos := giu.GetMousePos()
	origin := s.imageView.LastOrigin
	relX := float32(mousePos.X - origin.X)
	relY := float32(mousePos.Y - origin.Y)

	if giu.IsMouseClicked(giu.MouseButtonLeft) {
		if s.overlay.BeginDrag(relX, relY) {
			s.lastMousePos = mousePos
		}
	} else if s.overlay.IsDragging() {
		if giu.IsMouseDown(giu.MouseButtonLeft) {
			s.overlay.Drag(
				float32(mousePos.X-s.lastMousePos.X),
				float32(mousePos.Y-s.lastMousePos.Y))
			s.lastMousePos = mousePos
		} else {
			s.overlay.EndDrag()
		}
	}
}

func (s *Ui) drawCropOverlay() {
	if !s.overlay.IsVisible() {
		return
	}

	origin := s.imageView.LastOrigin
	rect := s.overlay.Rect()
	canvas := giu.GetCanvas()

	pMin := image.Pt(origin.X+int(rect.Left), origin.Y+int(rect.Top))
	pMax := image.Pt(origin.X+int(rect.Right()), origin.Y+int(rect.Bottom()))
	canvas.AddRect(pMin, pMax, cropBorderColor, 0, giu.DrawFlagsNone, 2)

	handle := rect.HandleRect()
	hMin := image.Pt(origin.X+int(handle.Left), origin.Y+int(handle.Top))
	hMax := image.Pt(origin.X+int(handle.Right()), origin.Y+int(handle.Bottom()))
	canvas.AddRectFilled(hMin, hMax, cropHandleColor, 0, giu.DrawFlagsNone)
}

func (s *Ui) commitCrop() {
	rect, ok := s.overlay.Commit()
	if !ok {
		return
	}
	s.sender.SendCommandToTopic(api.ImageRequestCrop, &api.CropCommand{
		Rect:        rect,
		DisplaySize: s.imageView.LastSize,
	})
}

func (s *Ui) handleKeyPress() {
	if giu.IsKeyPressed(giu.KeyF) {
		logger.Debug.Printf("Pick image files")
		s.sender.SendToTopic(api.FilePickRequested)
	}
	if giu.IsKeyPressed(giu.KeyD) {
		logger.Debug.Printf("Pick directory")
		s.sender.SendToTopic(api.DirectoryPickRequested)
	}

	// Navigation
	if giu.IsKeyPressed(giu.KeyLeft) {
		logger.Debug.Printf("Previous")
		s.sender.SendToTopic(api.ImageRequestPrevious)
	}
	if giu.IsKeyPressed(giu.KeyRight) {
		logger.Debug.Printf("Next")
		s.sender.SendToTopic(api.ImageRequestNext)
	}

	// Transforms
	if giu.IsKeyPressed(giu.KeyE) {
		logger.Debug.Printf("Rotate left")
		s.sender.SendToTopic(api.ImageRequestRotateLeft)
	}
	if giu.IsKeyPressed(giu.KeyR) {
		logger.Debug.Printf("Rotate right")
		s.sender.SendToTopic(api.ImageRequestRotateRight)
	}
	if giu.IsKeyPressed(giu.KeyC) {
		if s.currentImageTexture.HasImage() {
			s.overlay.Toggle()
		}
	}
	if giu.IsKeyPressed(giu.KeyEnter) || giu.IsKeyPressed(giu.KeyKPEnter) {
		s.commitCrop()
	}

	// Casting
	if giu.IsKeyPressed(giu.KeyF8) {
		logger.Debug.Printf("Find cast devices")
		s.devices = nil
		s.findingDevices = true
		s.sender.SendToTopic(api.CastDeviceSearch)
	}
	if giu.IsKeyPressed(giu.KeyF10) {
		logger.Debug.Printf("Stop casting")
		s.casting = false
		s.selectedDevice = ""
		s.sender.SendToTopic(api.CastStop)
	}
}

func (s *Ui) SetCurrentImage(command *api.UpdateImageCommand) {
	s.currentImageFile = command.ImageFile
	s.index = command.Index
	s.total = command.Total
	s.overlay.Hide()

	if command.Image == nil {
		s.currentImageTexture = widget.NewEmptyTexturedImage()
		s.imageView = widget.ResizableImage(s.currentImageTexture)
	} else {
		s.currentImageTexture.ChangeImage(command.Image)
		width, height := s.win.GetSize()
		s.currentImageTexture.LoadImageAsTexture(float32(width), float32(height))
	}
	giu.Update()
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
	giu.Update()
}

func (s *Ui) DeviceFound(command *api.DeviceFoundCommand) {
	s.devices = append(s.devices, command.DeviceName)
	giu.Update()
}

func (s *Ui) CastReady() {
	s.casting = true
	giu.Update()
}

func (s *Ui) CastFindDone() {
	s.findingDevices = false
	giu.Update()
}
