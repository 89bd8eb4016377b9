package transport

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/joshuafuller/dog/internal/dogerr"
)

// DefaultPlainPort is the default port for UDP/TCP.
const DefaultPlainPort = "53"

// DefaultTLSPort is the default port for DNS-over-TLS.
const DefaultTLSPort = "853"

// NormalizeHostPort splits a caller-supplied "addr[:port]" endpoint
// (IPv4 or bracketed IPv6) and applies defaultPort when none is given. It
// does not resolve hostnames; that is delegated to the OS at dial time.
func NormalizeHostPort(raw, defaultPort string) (string, error) {
	if raw == "" {
		return "", &dogerr.ArgumentError{Field: "nameserver", Message: "empty endpoint"}
	}

	if host, port, err := net.SplitHostPort(raw); err == nil {
		return net.JoinHostPort(host, port), nil
	}

	// No port present. net.SplitHostPort also errors on a bare bracketed
	// IPv6 literal with no port, and on a bare IPv6 literal with colons but
	// no brackets; handle both by stripping brackets if present.
	host := strings.TrimPrefix(strings.TrimSuffix(raw, "]"), "[")
	return net.JoinHostPort(host, defaultPort), nil
}

// ParseEndpoint validates raw as a DNS-over-HTTPS nameserver endpoint. DoH
// nameservers are given as a complete URL (e.g.
// "https://dns.example.com/dns-query"), not addr[:port], and the scheme
// must be https: plain http:// carries the query in cleartext and is
// rejected rather than silently downgrading the -H transport.
func ParseEndpoint(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", &dogerr.ArgumentError{Field: "nameserver", Message: err.Error()}
	}
	if u.Scheme != "https" {
		return "", &dogerr.ArgumentError{Field: "nameserver", Message: fmt.Sprintf("https endpoint %q must use the https scheme", raw)}
	}
	return raw, nil
}

// Hostname extracts the bare hostname from a host:port endpoint, for TLS
// certificate verification against the endpoint's hostname.
func Hostname(hostport string) (string, error) {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", &dogerr.ArgumentError{Field: "nameserver", Message: err.Error()}
	}
	return host, nil
}
