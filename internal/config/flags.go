package config

import (
	"github.com/choria-io/fisk"
)

// Version is reported by --version
const Version = "1.0"

func newApp(cfg *Config) *fisk.Application {
	app := fisk.New("aping", "Audible ping application")
	app.Version(Version)

	app.Arg("destination", "The target host or IP address to ping").Required().StringVar(&cfg.Destination)
	app.Flag("inverse", "Beep on failed pings instead of successful ones").Short('i').BoolVar(&cfg.Inverse)
	app.Flag("report-dir", "Write a session report with a latency chart to this directory on exit").PlaceHolder("DIR").StringVar(&cfg.ReportDir)
	app.Flag("debug", "Enable debug logging").BoolVar(&cfg.Debug)

	return app
}

// ParseFlags parses command-line arguments (without the program name) and
// returns a Config
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if _, err := newApp(&cfg).Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
