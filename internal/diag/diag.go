// Package diag holds the package-level diagnostic logger used by Panic
// Containment to report uncontained coroutine panics.
package diag

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, PartsOrder: []string{zerolog.MessageFieldName}})
)

// SetLogger replaces the logger used for uncontained-panic diagnostics.
// Passing a nil *zerolog.Logger-equivalent isn't possible (zerolog.Logger
// is a value type); callers that want the default back can construct
// it themselves: a zerolog.ConsoleWriter on os.Stderr with NoColor set
// and PartsOrder limited to zerolog.MessageFieldName.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// PanicLine emits the single required diagnostic line for a coroutine
// that terminated by panicking, verbatim per spec.md §4.6/§8:
//
//	Coroutine '<name-or-unnamed>' panicked at '<message>'
func PanicLine(name, message string) {
	if name == "" {
		name = "unnamed"
	}
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Error().Msgf("Coroutine '%s' panicked at '%s'", name, message)
}
