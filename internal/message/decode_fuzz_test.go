package message

import "testing"

// FuzzDecode checks that Decode never panics, loops forever, or reads out
// of bounds on hostile input: it either returns a Message or an error.
//
// Run with: go test -fuzz=FuzzDecode -fuzztime=10000x ./internal/message/
func FuzzDecode(f *testing.F) {
	// Valid message: one question, one A answer.
	f.Add([]byte{
		0x12, 0x34, // ID
		0x81, 0x80, // Flags: QR=1, RD=1, RA=1
		0x00, 0x01, // QDCOUNT = 1
		0x00, 0x01, // ANCOUNT = 1
		0x00, 0x00,
		0x00, 0x00,

		0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		0x03, 'c', 'o', 'm',
		0x00,
		0x00, 0x01,
		0x00, 0x01,

		0xC0, 0x0C,
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x78,
		0x00, 0x04,
		192, 168, 1, 100,
	})

	// Self-referencing compression pointer.
	f.Add([]byte{
		0x12, 0x34, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x0C, 0x00, 0x01, 0x00, 0x01,
	})

	// Truncated header.
	f.Add([]byte{0x12, 0x34, 0x00, 0x00})

	// Empty input.
	f.Add([]byte{})

	f.Fuzz(func(_ *testing.T, data []byte) {
		_, _ = Decode(data)
	})
}
