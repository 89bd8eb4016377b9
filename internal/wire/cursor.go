// Package wire implements the primitive cursor operations, name
// compression, and text-escaping rules shared by every per-record-type
// decoder in internal/rrtypes.
package wire

import (
	"encoding/binary"

	"github.com/joshuafuller/dog/internal/dogerr"
)

// Cursor reads big-endian primitives from an immutable byte slice. It never
// retains a reference back into msg beyond the lifetime of the decode call
// that owns it; every Read* that returns bytes copies them.
type Cursor struct {
	msg []byte
	pos int
}

// NewCursor returns a Cursor starting at the given offset into msg.
func NewCursor(msg []byte, offset int) *Cursor {
	return &Cursor{msg: msg, pos: offset}
}

// Pos returns the cursor's current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SetPos repositions the cursor. Used by name decompression to resume after
// following a pointer.
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// Len returns the total length of the underlying message.
func (c *Cursor) Len() int { return len(c.msg) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.msg) - c.pos }

// Bytes returns the full underlying message, for name decompression jumps.
func (c *Cursor) Bytes() []byte { return c.msg }

func (c *Cursor) need(n int) error {
	if n < 0 || c.pos+n > len(c.msg) {
		return dogerr.Protocolf("insufficient data at offset %d: need %d bytes, have %d", c.pos, n, len(c.msg)-c.pos)
	}
	return nil
}

// ReadUint8 reads one byte.
func (c *Cursor) ReadUint8() (byte, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.msg[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads a big-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.msg[c.pos : c.pos+2])
	c.pos += 2
	return v, nil
}

// ReadUint32 reads a big-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.msg[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadBytes reads and copies n raw bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.msg[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadCharString reads a DNS character-string: one length byte followed by
// that many opaque bytes.
func (c *Cursor) ReadCharString() ([]byte, error) {
	n, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	return c.ReadBytes(int(n))
}

// ReadRemaining reads every byte from the cursor's current position to the
// end of the message it was constructed over.
func (c *Cursor) ReadRemaining() ([]byte, error) {
	return c.ReadBytes(c.Remaining())
}
