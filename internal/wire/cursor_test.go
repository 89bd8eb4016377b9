package wire

import "testing"

func TestCursor_ReadPrimitives(t *testing.T) {
	msg := []byte{0x01, 0x02, 0x03, 0x00, 0x04, 0x00, 0x00, 0x05, 3, 'f', 'o', 'o'}
	c := NewCursor(msg, 0)

	u8, err := c.ReadUint8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadUint8() = %d, %v; want 1, nil", u8, err)
	}

	u16, err := c.ReadUint16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("ReadUint16() = %d, %v; want 0x0203, nil", u16, err)
	}

	u32, err := c.ReadUint32()
	if err != nil || u32 != 0x00040000 {
		t.Fatalf("ReadUint32() = %d, %v; want 0x00040000, nil", u32, err)
	}

	b, err := c.ReadBytes(1)
	if err != nil || len(b) != 1 || b[0] != 0x05 {
		t.Fatalf("ReadBytes(1) = %v, %v; want [5], nil", b, err)
	}

	cs, err := c.ReadCharString()
	if err != nil || string(cs) != "foo" {
		t.Fatalf("ReadCharString() = %q, %v; want %q, nil", cs, err, "foo")
	}

	if c.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", c.Remaining())
	}
}

func TestCursor_InsufficientData(t *testing.T) {
	c := NewCursor([]byte{0x01}, 0)
	if _, err := c.ReadUint16(); err == nil {
		t.Fatal("ReadUint16() error = nil, want error on truncated buffer")
	}
}

func TestCursor_ReadBytesCopies(t *testing.T) {
	msg := []byte{1, 2, 3}
	c := NewCursor(msg, 0)
	b, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	b[0] = 0xFF
	if msg[0] == 0xFF {
		t.Fatal("ReadBytes() returned a slice aliasing the original message")
	}
}
