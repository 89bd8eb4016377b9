package transport

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/logging"
)

// TLSTransport is DNS-over-TLS: the same framing as plain TCP, over an
// authenticated session to host:853 by default. Hostname verification is
// mandatory; it is never disabled, even for IP-literal endpoints.
type TLSTransport struct {
	// ServerName overrides the hostname used for certificate verification.
	// Empty means derive it from the endpoint.
	ServerName string
}

// NewTLS returns a TLSTransport.
func NewTLS() *TLSTransport { return &TLSTransport{} }

func (t *TLSTransport) Send(ctx context.Context, request []byte, server string) ([]byte, error) {
	addr, err := NormalizeHostPort(server, DefaultTLSPort)
	if err != nil {
		return nil, err
	}

	serverName := t.ServerName
	if serverName == "" {
		serverName, err = Hostname(addr)
		if err != nil {
			return nil, err
		}
	}

	var d net.Dialer
	if deadline, ok := ctx.Deadline(); ok {
		d.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(&d, "tcp", addr, &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "tls dial", Err: err}
	}
	defer conn.Close()

	resp, err := sendFramed(conn, request)
	if err != nil {
		return nil, err
	}
	logging.L.Debug().Str("server", addr).Str("sni", serverName).Int("bytes", len(resp)).Msg("dot response received")
	return resp, nil
}
