// Package resolvconf discovers the system's configured nameserver when the
// caller supplied none. This is a minimal, Unix-oriented reader of
// /etc/resolv.conf; it performs no recursive resolution of its own.
package resolvconf

import (
	"bufio"
	"os"
	"strings"

	"github.com/joshuafuller/dog/internal/dogerr"
)

// DefaultPath is the conventional location of the resolver configuration.
const DefaultPath = "/etc/resolv.conf"

// Nameservers returns every "nameserver" entry from path, in file order.
// An unreadable or empty file is a ResolverDiscoveryError (exit 4).
func Nameservers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &dogerr.ResolverDiscoveryError{Err: err}
	}
	defer f.Close()

	var servers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			servers = append(servers, fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &dogerr.ResolverDiscoveryError{Err: err}
	}
	if len(servers) == 0 {
		return nil, &dogerr.ResolverDiscoveryError{Err: errNoNameserver}
	}
	return servers, nil
}

var errNoNameserver = noNameserverErr{}

type noNameserverErr struct{}

func (noNameserverErr) Error() string { return "no nameserver entries found" }

// First returns the first configured nameserver from DefaultPath.
func First() (string, error) {
	servers, err := Nameservers(DefaultPath)
	if err != nil {
		return "", err
	}
	return servers[0], nil
}
