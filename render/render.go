// Package render turns a decoded dispatch.Outcome into table, short, or
// JSON output text, behind a narrow Renderer interface.
package render

import (
	"fmt"
	"strings"

	"github.com/joshuafuller/dog/internal/dispatch"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/registry"
)

// Renderer turns one dispatch Outcome into printable text.
type Renderer interface {
	// Render returns the text to print and whether it found anything
	// printable. A false result on a successful, error-free Outcome is what
	// the process turns into its no-result exit status.
	Render(o dispatch.Outcome) (text string, printable bool)
}

func mnemonic(code uint16) string {
	if m, ok := registry.MnemonicByType(code); ok {
		return m
	}
	return fmt.Sprintf("TYPE%d", code)
}

func formatRR(rr message.ResourceRecord) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s", rr.Name.String(), mnemonic(rr.RType), rr.TTL, rr.Record.String())
}

func joinRRs(rrs []message.ResourceRecord) string {
	lines := make([]string, len(rrs))
	for i, rr := range rrs {
		lines[i] = formatRR(rr)
	}
	return strings.Join(lines, "\n")
}
