package menu

import (
	"log/slog"
	"os"
)

// menuLogLevel controls the log level for menu debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var menuLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the toolkit.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		menuLogLevel.Set(slog.LevelDebug)
	} else {
		menuLogLevel.Set(slog.LevelInfo)
	}
}

// menuLogger is the logger for navigation and dispatch debugging.
var menuLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: menuLogLevel}))
