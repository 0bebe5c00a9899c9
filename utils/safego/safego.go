package safego

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/synclinehq/syncline/utils/logger"
)

// Recovery logs a panic with its stack trace instead of crashing silently;
// deferred at command entry points.
func Recovery(exit bool) {
	if err := recover(); err != nil {
		logger.Error(err)
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			logger.Error(strings.ReplaceAll(line, "\t", ""))
		}

		if exit {
			os.Exit(1)
		}
	}
}
