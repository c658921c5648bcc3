package common

import (
	"flag"
	"os"
)

// InitialDirEnv seeds the directory chooser when set. Absent means the
// chooser opens without a start directory.
const InitialDirEnv = "INITIAL_DIR"

type Params struct {
	logLevel              string
	httpPort              int
	secret                string
	alwaysStartHttpServer bool
	initialDir            string
	rootPath              string
}

func NewEmptyParams() *Params {
	return &Params{}
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	httpPort := flag.Int("httpPort", 8080, "HTTP server port for casting the current image")
	secret := flag.String("secret", "", "Override default random secret for casting")
	alwaysStartHttpServer := flag.Bool("alwaysStartHttpServer", false, "Always start HTTP server. Not only when casting.")

	flag.Parse()
	rootPath := flag.Arg(0)

	return &Params{
		logLevel:              *logLevel,
		httpPort:              *httpPort,
		secret:                *secret,
		alwaysStartHttpServer: *alwaysStartHttpServer,
		initialDir:            os.Getenv(InitialDirEnv),
		rootPath:              rootPath,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) HttpPort() int {
	return s.httpPort
}

func (s *Params) Secret() string {
	return s.secret
}

func (s *Params) AlwaysStartHttpServer() bool {
	return s.alwaysStartHttpServer
}

func (s *Params) InitialDir() string {
	return s.initialDir
}

// RootPath is an optional directory argument that behaves like a completed
// directory pick at startup.
func (s *Params) RootPath() string {
	return s.rootPath
}
