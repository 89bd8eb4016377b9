package transport

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestUDPTransport_Send(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("ListenUDP() error = %v", err)
	}
	defer conn.Close()

	reply := []byte{0x01, 0x02, 0x03}
	go func() {
		buf := make([]byte, 512)
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		_ = n
		conn.WriteToUDP(reply, addr)
	}()

	tr := NewUDP()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := tr.Send(ctx, []byte{0xFF}, conn.LocalAddr().String())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if string(resp) != string(reply) {
		t.Errorf("Send() = %v, want %v", resp, reply)
	}
}

func TestUDPTransport_TimeoutWithNoReply(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1")})
	if err != nil {
		t.Fatalf("ListenUDP() error = %v", err)
	}
	defer conn.Close() // never replies

	tr := NewUDP()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if _, err := tr.Send(ctx, []byte{0xFF}, conn.LocalAddr().String()); err == nil {
		t.Fatal("Send() error = nil, want timeout error")
	}
}
