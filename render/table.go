package render

import (
	"fmt"
	"strings"

	"github.com/joshuafuller/dog/internal/dispatch"
)

// Table renders the full question/answer/authority/additional sections in
// tab-separated form, one section at a time.
type Table struct{}

func (Table) Render(o dispatch.Outcome) (string, bool) {
	if o.Err != nil {
		return fmt.Sprintf("%v", o.Err), false
	}

	var b strings.Builder
	for _, q := range o.Response.Questions {
		fmt.Fprintf(&b, ";; QUESTION\t%s\t%s\t%s\n", q.Name.String(), mnemonic(q.QClass), mnemonic(q.QType))
	}
	if len(o.Response.Answers) > 0 {
		fmt.Fprintf(&b, ";; ANSWER\n%s\n", joinRRs(o.Response.Answers))
	}
	if len(o.Response.Authorities) > 0 {
		fmt.Fprintf(&b, ";; AUTHORITY\n%s\n", joinRRs(o.Response.Authorities))
	}
	if len(o.Response.Additionals) > 0 {
		fmt.Fprintf(&b, ";; ADDITIONAL\n%s\n", joinRRs(o.Response.Additionals))
	}

	text := strings.TrimRight(b.String(), "\n")
	return text, len(o.Response.Answers) > 0
}
