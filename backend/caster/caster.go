package caster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	cast "github.com/AndreasAbdi/gochromecast"
	"github.com/AndreasAbdi/gochromecast/configs"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/hashicorp/mdns"

	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/backend/transform"
	"vincit.fi/image-viewer/common"
	"vincit.fi/image-viewer/common/logger"
)

const (
	deviceSearchTimeout = time.Second * 30
	imageSendTimeout    = time.Second * 1
	castService         = "_googlecast._tcp"
	canvasWidth         = 1920
	canvasHeight        = 1080
)

var canvasSize = apitype.SizeOf(canvasWidth, canvasHeight)

// Caster mirrors the current image to a Chromecast device. The device
// loads the frame from a local HTTP server that serves the in-memory
// image, transforms included, as an encoded JPEG payload.
type Caster struct {
	secret                string
	port                  int
	devices               map[string]*DeviceEntry
	sender                api.Sender
	selectedDevice        string
	server                *http.Server
	showBackground        bool
	alwaysStartHttpServer bool

	currentImage image.Image
	imageMux     sync.Mutex

	api.Caster
}

type DeviceEntry struct {
	serviceEntry *mdns.ServiceEntry
	device       *cast.Device
	localAddr    net.IP
}

func NewCaster(params *common.Params, sender api.Sender) api.Caster {
	c := &Caster{
		port:                  params.HttpPort(),
		alwaysStartHttpServer: params.AlwaysStartHttpServer(),
		secret:                resolveSecret(params.Secret()),
		sender:                sender,
		showBackground:        true,
		devices:               map[string]*DeviceEntry{},
	}

	if params.AlwaysStartHttpServer() {
		c.StartServer(params.HttpPort())
	}

	return c
}

func resolveSecret(secret string) string {
	if secret != "" {
		return secret
	}
	randomSecret, err := uuid.NewRandom()
	if err != nil {
		logger.Error.Panic("Could not initialize secret for casting", err)
		return ""
	}
	return randomSecret.String()
}

func (s *Caster) StartServer(port int) {
	if s.server == nil {
		logger.Info.Printf("Starting HTTP server at port %d", s.port)
		go s.startServer(port)
	} else {
		logger.Warn.Println("Server already running")
	}
}

func (s *Caster) StopServer() {
	if s.server == nil {
		logger.Debug.Println("No server running")
		return
	}

	logger.Info.Println("Shutting down HTTP server")
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.sender.SendError("Error while shutting down HTTP server", err)
	}
	s.server = nil
}

func (s *Caster) startServer(port int) {
	logger.Debug.Printf("Starting HTTP server at port %d", port)
	s.port = port

	mux := http.NewServeMux()
	mux.HandleFunc("/"+s.secret+"/", s.imageHandler)
	s.server = &http.Server{Addr: ":" + strconv.Itoa(port), Handler: mux}
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.sender.SendError("Error while initializing HTTP server", err)
		s.server = nil
	}
}

func (s *Caster) imageHandler(responseWriter http.ResponseWriter, r *http.Request) {
	s.imageMux.Lock()
	img := s.currentImage
	s.imageMux.Unlock()

	if img == nil {
		http.NotFound(responseWriter, r)
		return
	}

	logger.Debug.Print("Sending current image to Chromecast")
	payload, err := transform.EncodeJpeg(composeCanvas(img, s.showBackground))
	if err != nil {
		logger.Error.Println("Failed to encode image: ", err)
		return
	}

	responseWriter.Header().Set("Content-Type", "image/jpeg")
	responseWriter.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	if _, err := responseWriter.Write(payload); err != nil {
		logger.Error.Println("Failed to write image: ", err)
	}
}

// composeCanvas fits the image on a full HD canvas, optionally behind a
// blurred and grayscaled copy of itself so the letterbox isn't plain black.
func composeCanvas(srcImage image.Image, blurBackground bool) image.Image {
	fullHdCanvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	black := color.RGBA{A: 255}
	draw.Draw(fullHdCanvas, fullHdCanvas.Bounds(), &image.Uniform{C: black}, image.Point{}, draw.Src)

	size := apitype.SizeOfImage(srcImage).ScaledToFit(canvasSize)

	if blurBackground {
		background := imaging.Fill(srcImage, canvasWidth, canvasHeight, imaging.Center, imaging.Linear)
		background = imaging.Blur(background, 10)
		background = imaging.Grayscale(background)
		draw.Draw(fullHdCanvas, fullHdCanvas.Bounds(), background, image.Point{}, draw.Src)
	}

	scaled := imaging.Resize(srcImage, size.Width(), size.Height(), imaging.Linear)
	offset := image.Point{X: (size.Width() - canvasWidth) / 2, Y: (size.Height() - canvasHeight) / 2}
	draw.Draw(fullHdCanvas, fullHdCanvas.Bounds(), scaled, offset, draw.Src)

	return fullHdCanvas
}

func (s *Caster) FindDevices() {
	s.devices = map[string]*DeviceEntry{}
	entriesCh := make(chan *mdns.ServiceEntry, 4)
	go func() {
		for entry := range entriesCh {
			if !strings.Contains(entry.Name, castService) {
				continue
			}
			deviceName := resolveDeviceName(entry)

			logger.Debug.Printf("Found device: %v", entry)

			// The local IP address as which the Chromecast sees this
			// host has to be resolved before connecting, the connection
			// objects don't expose it afterwards.
			localAddr, err := resolveLocalAddress(entry)
			if err != nil {
				s.sender.SendError("Could not resolve local address", err)
				continue
			}

			s.devices[deviceName] = &DeviceEntry{
				serviceEntry: entry,
				localAddr:    localAddr,
			}
			s.sender.SendCommandToTopic(api.CastDeviceFound, &api.DeviceFoundCommand{
				DeviceName: deviceName,
			})
		}
	}()

	go func() {
		defer close(entriesCh)
		_ = mdns.Query(&mdns.QueryParam{
			Service: castService,
			Timeout: deviceSearchTimeout,
			Entries: entriesCh,
		})
		s.sender.SendToTopic(api.CastDevicesSearchDone)
	}()
}

func resolveDeviceName(entry *mdns.ServiceEntry) string {
	var name string
	for _, field := range entry.InfoFields {
		if strings.HasPrefix(field, "fn=") {
			name = strings.ReplaceAll(field, "fn=", "")
		}
	}
	return name
}

func resolveLocalAddress(entry *mdns.ServiceEntry) (net.IP, error) {
	logger.Debug.Printf("Resolving local address for %s:%d", entry.Host, entry.Port)
	const chromecastTestPort = 32768 // Just some valid UDP port on the Chromecast

	var address string
	if entry.AddrV4 != nil {
		address = fmt.Sprintf("%s:%d", entry.AddrV4, chromecastTestPort)
	} else {
		address = fmt.Sprintf("%s:%d", entry.AddrV6, chromecastTestPort)
	}

	conn, err := net.Dial("udp", address)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	addr := conn.LocalAddr().(*net.UDPAddr).IP
	logger.Debug.Printf("Resolved local address to '%s'", addr.String())
	return addr, nil
}

func (s *Caster) SelectDevice(command *api.SelectDeviceCommand) {
	logger.Debug.Printf("Selected device '%s'", command.Name)
	device, ok := s.devices[command.Name]
	if !ok {
		s.sender.SendError("Unknown device '"+command.Name+"'", nil)
		return
	}

	s.selectedDevice = command.Name
	s.showBackground = command.ShowBackground
	d, err := cast.NewDevice(device.serviceEntry.Addr, device.serviceEntry.Port)
	if err != nil {
		s.sender.SendError("Error while selecting device", err)
		return
	}

	device.device = &d
	appId := configs.MediaReceiverAppID
	device.device.ReceiverController.LaunchApplication(&appId, time.Second*5, false)

	s.StartServer(s.port)
	s.sender.SendToTopic(api.CastReady)
}

// CastImage publishes the latest frame to the selected device. Called on
// every current-image update; a no-op while nothing is selected.
func (s *Caster) CastImage(command *api.UpdateImageCommand) {
	s.imageMux.Lock()
	s.currentImage = command.Image
	s.imageMux.Unlock()

	if s.selectedDevice == "" || s.server == nil {
		return
	}

	device, ok := s.devices[s.selectedDevice]
	if !ok {
		return
	}

	// A random path component per frame so that the Chromecast sees a
	// new URL and actually reloads. The server decides what is served,
	// so the outside world can't request arbitrary files.
	cacheBuster, err := uuid.NewRandom()
	if err != nil {
		logger.Warn.Print("Could not generate cache buster: ", err)
		return
	}

	ip := device.localAddr.String()
	imageUrl := fmt.Sprintf("http://%s:%d/%s/%s", ip, s.port, s.secret, cacheBuster.String())
	logger.Debug.Printf("Casting image '%s'", imageUrl)
	if _, err := device.device.MediaController.Load(imageUrl, "image/jpeg", imageSendTimeout); err != nil {
		logger.Warn.Print("Timed out while trying to cast image: ", err.Error())
	}
}

func (s *Caster) StopCasting() {
	if s.selectedDevice == "" {
		return
	}

	logger.Info.Printf("Stop casting to '%s'", s.selectedDevice)
	if device, ok := s.devices[s.selectedDevice]; ok && device.device != nil {
		device.device.QuitApplication(time.Second * 5)
	}
	s.selectedDevice = ""

	if !s.alwaysStartHttpServer {
		s.StopServer()
	}
}

func (s *Caster) Close() {
	logger.Info.Println("Shutdown caster")
	s.StopCasting()
	s.StopServer()
}
