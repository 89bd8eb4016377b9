package transport

import (
	"context"
	"encoding/binary"
	"io"
	"net"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/logging"
)

// TCPTransport frames requests and responses with a u16 big-endian length
// prefix.
type TCPTransport struct{}

// NewTCP returns a TCPTransport.
func NewTCP() *TCPTransport { return &TCPTransport{} }

func (t *TCPTransport) Send(ctx context.Context, request []byte, server string) ([]byte, error) {
	addr, err := NormalizeHostPort(server, DefaultPlainPort)
	if err != nil {
		return nil, err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &dogerr.NetworkError{Operation: "tcp dial", Err: err}
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, &dogerr.NetworkError{Operation: "tcp set deadline", Err: err}
		}
	}

	resp, err := sendFramed(conn, request)
	if err != nil {
		return nil, err
	}
	logging.L.Debug().Str("server", addr).Int("bytes", len(resp)).Msg("tcp response received")
	return resp, nil
}

// sendFramed writes a length-prefixed request and reads a length-prefixed
// reply; shared by plain TCP and DoT, which is the same framing over an
// authenticated TLS session.
func sendFramed(rw io.ReadWriter, request []byte) ([]byte, error) {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(request)))

	if _, err := rw.Write(lenBuf[:]); err != nil {
		return nil, &dogerr.NetworkError{Operation: "tcp write length", Err: err}
	}
	if _, err := rw.Write(request); err != nil {
		return nil, &dogerr.NetworkError{Operation: "tcp write message", Err: err}
	}

	if _, err := io.ReadFull(rw, lenBuf[:]); err != nil {
		return nil, &dogerr.NetworkError{Operation: "tcp read length", Err: err}
	}
	respLen := binary.BigEndian.Uint16(lenBuf[:])

	resp := make([]byte, respLen)
	if _, err := io.ReadFull(rw, resp); err != nil {
		return nil, &dogerr.NetworkError{Operation: "tcp read message (truncated stream)", Err: err}
	}
	return resp, nil
}
