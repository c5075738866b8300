package palindrome

import (
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/go_palindrome/internal/ports"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates the logger used when none is configured.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewDiscardLogger()
}

func loggerFromExisting(existing l.Logger) ports.Logger {
	return logger.FromExisting(existing)
}
