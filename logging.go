package veloce

import (
	"log/slog"

	ilog "github.com/veloce/client-go/internal/log"
)

// SetupLogging builds a text logger at the given level (debug, info,
// warn, error) writing to stderr, suitable for passing to WithLogger.
func SetupLogging(level string) *slog.Logger {
	return ilog.New(&ilog.Config{Level: level, Format: ilog.FormatText})
}
