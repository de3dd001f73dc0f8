package cli

import (
	"log/slog"

	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
)

// screenNavigator tracks the screen the App would show. Commands print
// their own output; the screen is only reported by whoami and in debug logs.
type screenNavigator struct {
	logger  *slog.Logger
	current navigation.Screen
}

func (n *screenNavigator) Reset(screen navigation.Screen) {
	n.logger.Debug("reset screen", slog.String("screen", string(screen)))
	n.current = screen
}

func (n *screenNavigator) Navigate(screen navigation.Screen) {
	n.logger.Debug("navigate", slog.String("from", string(n.current)), slog.String("to", string(screen)))
	n.current = screen
}
