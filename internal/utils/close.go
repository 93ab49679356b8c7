package utils

import (
	"io"

	"github.com/MrSnakeDoc/catalog/internal/logger"
)

// CloseLogged closes c and logs a failure under the given name.
// Use at shutdown where nothing else can be done with the error.
func CloseLogged(log logger.Logger, name string, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("resource", name), logger.Error(err))
		return
	}
	log.Info("closed cleanly", logger.String("resource", name))
}
