package render

import (
	"strings"

	"github.com/joshuafuller/dog/internal/dispatch"
)

// Short renders only the answer section's record data, one line per
// record, with no names/types/ttls.
type Short struct{}

func (Short) Render(o dispatch.Outcome) (string, bool) {
	if o.Err != nil {
		return "", false
	}
	if len(o.Response.Answers) == 0 {
		return "", false
	}

	lines := make([]string, 0, len(o.Response.Answers))
	for _, rr := range o.Response.Answers {
		lines = append(lines, rr.Record.String())
	}
	return strings.Join(lines, "\n"), true
}
