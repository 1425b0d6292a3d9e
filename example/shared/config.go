package shared

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	LogLevel       string
	WorkerPath     string
	MaxPayloadSize int
	Modules        []string
	ScrollReports  int
}

func DefaultConfig() Config {
	return Config{
		LogLevel:       "debug",
		WorkerPath:     "./worker",
		MaxPayloadSize: 1 << 20,
		Modules:        []string{"adblock"},
		ScrollReports:  3,
	}
}

// config.toml key mapping to the controller runtime settings.
type fileConfig struct {
	LogLevel       string   `toml:"log_level"`
	WorkerPath     string   `toml:"worker_path"`
	MaxPayloadSize int      `toml:"max_payload_size"`
	Modules        []string `toml:"modules"`
	ScrollReports  int      `toml:"scroll_reports"`
}

// LoadConfig overlays the TOML file at path onto the defaults. A missing
// file is not an error: the defaults run as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("worker_path") {
		cfg.WorkerPath = raw.WorkerPath
	}
	if meta.IsDefined("max_payload_size") {
		cfg.MaxPayloadSize = raw.MaxPayloadSize
	}
	if meta.IsDefined("modules") {
		cfg.Modules = raw.Modules
	}
	if meta.IsDefined("scroll_reports") {
		cfg.ScrollReports = raw.ScrollReports
	}
	return cfg, nil
}

// WorkerSettings ride a module message from the controller to the
// worker; both sides must agree on the encoding, so the type lives here.
type WorkerSettings struct {
	ScrollReports int    `cbor:"scroll_reports"`
	PageID        uint64 `cbor:"page_id"`
}
