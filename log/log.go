// Package log provides the levelled logging used throughout ga-app-sheets. Messages are
// written with the standard logger in the form 'INFO  message'. DEBUG messages are only
// written when debugging is enabled with the --debug command line option.
package log

import (
	"fmt"
	"io"
	syslog "log"
	"sync"
)

var (
	mu    sync.RWMutex
	debug bool
)

func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()

	debug = enabled
}

func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()

	return debug
}

// SetOutput redirects the underlying logger, mostly for tests.
func SetOutput(w io.Writer) {
	syslog.SetOutput(w)
}

func Debugf(format string, args ...any) {
	if IsDebug() {
		syslog.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...any) {
	syslog.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	syslog.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	syslog.Printf("%-5s %s", "ERROR", fmt.Sprintf(format, args...))
}
