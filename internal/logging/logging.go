// Package logging owns the process-wide debug sink controlled by the
// DOG_DEBUG environment variable. It is initialized once at startup and
// never mutated afterward.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// L is the process logger. Components log through it directly; nothing
// about correctness depends on whether it is enabled.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger().Level(zerolog.Disabled)

var once sync.Once

// Init reads DOG_DEBUG and sets L's level accordingly:
//
//	unset/empty -> disabled (no debug output)
//	"trace"     -> trace level
//	any other non-empty value -> info level
//
// Init is idempotent; only the first call takes effect.
func Init() {
	once.Do(func() {
		switch v := os.Getenv("DOG_DEBUG"); {
		case v == "":
			L = L.Level(zerolog.Disabled)
		case v == "trace":
			L = L.Level(zerolog.TraceLevel)
		default:
			L = L.Level(zerolog.InfoLevel)
		}
	})
}
