package api

import (
	"vincit.fi/image-viewer/api/apitype"
)

type SelectDeviceCommand struct {
	Name           string
	ShowBackground bool

	apitype.Command
}

type Caster interface {
	FindDevices()
	SelectDevice(*SelectDeviceCommand)
	CastImage(*UpdateImageCommand)
	StopCasting()
	Close()
}
