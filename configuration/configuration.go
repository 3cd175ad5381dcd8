package configuration

import (
	"time"
)

type Configuration struct {
	HttpAddr          string        `usage:"HTTP address"`
	Source            string        `usage:"countries JSON file or http(s) URL, empty to use the bundled one"`
	Statics           string        `usage:"statics directory"`
	SessionTTL        time.Duration `usage:"forget visitor tables idle for longer than this"`
	EnableCompression bool          `usage:"gzip responses"`
	LogLevel          string        `usage:"log level: debug, info, warn, error"`
	Version           bool          `usage:"show version and exit"`
	ShowBanner        bool          `usage:"show big banner"`
	ShowConfig        bool          `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          ":8080",
		SessionTTL:        30 * time.Minute,
		EnableCompression: true,
		LogLevel:          "info",
		ShowBanner:        true,
	}
}
