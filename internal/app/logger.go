package app

import (
	"os"

	"service-gas-delivery/internal/config"
	"service-gas-delivery/internal/logx"
)

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
}
