// Package idna is a thin wrapper around golang.org/x/net/idna: query names
// are passed through it only when the caller opts in, producing ASCII
// A-labels for non-ASCII input before the wire codec ever sees the name.
package idna

import (
	"golang.org/x/net/idna"

	"github.com/joshuafuller/dog/internal/dogerr"
)

var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
)

// ToASCII converts name to its A-label form. The lookup mapping folds
// uppercase ASCII to lowercase, so only names that are already lowercase
// ASCII pass through unchanged.
func ToASCII(name string) (string, error) {
	out, err := profile.ToASCII(name)
	if err != nil {
		return "", &dogerr.ArgumentError{Field: "query name", Message: err.Error()}
	}
	return out, nil
}
