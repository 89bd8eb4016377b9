// Package transport implements the four interchangeable carriers:
// plaintext UDP, plaintext TCP, DNS-over-TLS, and DNS-over-HTTPS. Every
// transport implements one operation, Send, and is pure I/O: it never
// parses the DNS message it carries.
package transport

import (
	"context"
	"time"
)

// DefaultTimeout is the default deadline for a single transport call
// (connect + write + read).
const DefaultTimeout = 5 * time.Second

// Transport sends a raw request and returns the raw response bytes.
type Transport interface {
	Send(ctx context.Context, request []byte, server string) ([]byte, error)
}

// Kind identifies which transport the dispatcher selected, including the
// Auto placeholder that starts with UDP and falls back to TCP on
// truncation.
type Kind int

const (
	Auto Kind = iota
	UDP
	TCP
	TLS
	HTTPS
)
