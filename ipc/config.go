package ipc

import (
	"ipc-toolkit/wire"
	"log"
)

const (
	defaultMaxPayloadSize = wire.DefaultMaxPayload
	defaultReadBufferSize = 4096
	defaultReadBacklog    = 16

	minReadBufferSize = 512
	minReadBacklog    = 0
)

type Config struct {
	// Upper bound for a declared payload length. A header declaring more
	// than this is treated as channel corruption, not as a large message.
	MaxPayloadSize int

	// Optional logger for debugging purposes
	Logger *log.Logger

	ReadBufferSize int
	ReadBacklog    int
}

func DefaultConfig() Config {
	return Config{
		MaxPayloadSize: defaultMaxPayloadSize,
		ReadBufferSize: defaultReadBufferSize,
		ReadBacklog:    defaultReadBacklog,

		Logger: discardLogger,
	}
}

func sanitizeConfig(cfg Config) Config {
	if cfg.MaxPayloadSize <= 0 {
		cfg.MaxPayloadSize = defaultMaxPayloadSize
	}
	if cfg.ReadBufferSize < minReadBufferSize {
		cfg.ReadBufferSize = minReadBufferSize
	}
	if cfg.ReadBacklog < minReadBacklog {
		cfg.ReadBacklog = minReadBacklog
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger
	}
	return cfg
}
