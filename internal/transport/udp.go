package transport

import (
	"context"
	"net"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/logging"
)

// UDPTransport sends one datagram and awaits one datagram in reply. The
// maximum expected response size is bounded by RecvBufferSize; EDNS(0)
// BufSize tweaks should keep real replies under it.
type UDPTransport struct {
	RecvBufferSize int
}

// NewUDP returns a UDPTransport with a receive buffer large enough for
// typical EDNS(0)-sized responses.
func NewUDP() *UDPTransport {
	return &UDPTransport{RecvBufferSize: 4096}
}

func (t *UDPTransport) Send(ctx context.Context, request []byte, server string) ([]byte, error) {
	addr, err := NormalizeHostPort(server, DefaultPlainPort)
	if err != nil {
		return nil, err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", addr)
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "udp dial", Err: err}
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, &dogerr.NetworkError{Operation: "udp set deadline", Err: err}
		}
	}

	if _, err := conn.Write(request); err != nil {
		return nil, &dogerr.NetworkError{Operation: "udp write", Err: err}
	}

	buf := make([]byte, t.bufSize())
	n, err := conn.Read(buf)
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "udp read", Err: err}
	}

	logging.L.Debug().Str("server", addr).Int("bytes", n).Msg("udp response received")
	return buf[:n], nil
}

func (t *UDPTransport) bufSize() int {
	if t.RecvBufferSize > 0 {
		return t.RecvBufferSize
	}
	return 4096
}
