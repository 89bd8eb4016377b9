package wire

import (
	"strings"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/protocol"
)

// Name is a decoded DNS name: an ordered sequence of labels, stored as raw
// label bytes (not dot-joined text) so rendering can apply the escaping
// rules without re-parsing escape sequences back out of a string. Labels
// are copied out of the message buffer at decode time; a Name never
// aliases the original wire bytes.
type Name struct {
	Labels [][]byte
}

// String joins labels with dots using the same escaping rules as text
// records, for contexts (error messages, table output) that want a single
// string.
func (n Name) String() string {
	if len(n.Labels) == 0 {
		return "."
	}
	parts := make([]string, len(n.Labels))
	for i, l := range n.Labels {
		parts[i] = EscapeText(l)
	}
	return strings.Join(parts, ".")
}

// ReadName decodes a DNS name starting at offset within msg, following
// compression pointers per RFC 1035 §4.1.4. It returns the decoded name and
// the offset immediately after the name as it appears at its original
// position (i.e. after a pointer, not after the jump target).
func ReadName(msg []byte, offset int) (Name, int, error) {
	if offset < 0 || offset > len(msg) {
		return Name{}, 0, dogerr.Protocolf("name offset %d out of bounds (message is %d bytes)", offset, len(msg))
	}

	var labels [][]byte
	pos := offset
	endPos := -1 // offset just past the name at its original location
	jumps := 0
	totalLen := 0

	for {
		if pos >= len(msg) {
			return Name{}, 0, dogerr.Protocolf("unexpected end of message while reading name at offset %d", pos)
		}

		lengthByte := msg[pos]

		switch {
		case lengthByte&protocol.CompressionMask == protocol.CompressionMask:
			// Compression pointer: high two bits 11, low 14 bits are the offset.
			if pos+1 >= len(msg) {
				return Name{}, 0, dogerr.Protocolf("truncated compression pointer at offset %d", pos)
			}
			pointerOffset := int(lengthByte&0x3F)<<8 | int(msg[pos+1])

			if pointerOffset >= pos {
				return Name{}, 0, dogerr.Protocolf("compression pointer at offset %d targets offset %d, which does not precede it", pos, pointerOffset)
			}

			if endPos == -1 {
				endPos = pos + 2
			}

			jumps++
			if jumps > protocol.MaxCompressionJumps {
				return Name{}, 0, dogerr.Protocolf("too many compression pointer jumps (possible loop) while reading name at offset %d", offset)
			}

			pos = pointerOffset

		case lengthByte&0xC0 == protocol.ReservedLabelMask, lengthByte&0xC0 == 0x80:
			return Name{}, 0, dogerr.Protocolf("label at offset %d uses a reserved length-prefix form (0x%02x)", pos, lengthByte)

		case lengthByte == 0:
			if endPos == -1 {
				endPos = pos + 1
			}
			return Name{Labels: labels}, endPos, nil

		default:
			length := int(lengthByte)
			if length > protocol.MaxLabelLength {
				return Name{}, 0, dogerr.Protocolf("label at offset %d has length %d, exceeding the maximum of %d", pos, length, protocol.MaxLabelLength)
			}
			if pos+1+length > len(msg) {
				return Name{}, 0, dogerr.Protocolf("label at offset %d claims %d bytes but only %d remain", pos, length, len(msg)-pos-1)
			}

			label := make([]byte, length)
			copy(label, msg[pos+1:pos+1+length])
			labels = append(labels, label)

			totalLen += length + 1
			if totalLen > protocol.MaxNameWireLength {
				return Name{}, 0, dogerr.Protocolf("decompressed name exceeds maximum length of %d bytes", protocol.MaxNameWireLength)
			}
			if len(labels) > protocol.MaxLabelCount {
				return Name{}, 0, dogerr.Protocolf("name has more than %d labels", protocol.MaxLabelCount)
			}

			pos += 1 + length
		}
	}
}

// ReadNameAt is a convenience wrapper taking a Cursor: it decodes a name at
// the cursor's current position and advances the cursor past it.
func ReadNameAt(c *Cursor) (Name, error) {
	name, next, err := ReadName(c.Bytes(), c.Pos())
	if err != nil {
		return Name{}, err
	}
	c.SetPos(next)
	return name, nil
}

// EncodeName serializes name into wire format: length-prefixed labels
// terminated by a zero-length label. The encoder never emits compression
// pointers.
func EncodeName(name string) ([]byte, error) {
	labels, err := SplitName(name)
	if err != nil {
		return nil, err
	}
	return EncodeLabels(labels)
}

// SplitName splits a textual name into raw label byte slices, validating
// length constraints. A trailing "." (fully-qualified name) is permitted
// and produces no empty trailing label.
func SplitName(name string) ([][]byte, error) {
	if name == "" || name == "." {
		return nil, nil
	}

	parts := strings.Split(name, ".")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	if len(parts) > protocol.MaxLabelCount {
		return nil, dogerr.Protocolf("name %q has more than %d labels", name, protocol.MaxLabelCount)
	}

	labels := make([][]byte, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			return nil, dogerr.Protocolf("name %q contains an empty label", name)
		}
		if len(p) > protocol.MaxLabelLength {
			return nil, dogerr.Protocolf("label %q in name %q exceeds %d bytes", p, name, protocol.MaxLabelLength)
		}
		labels = append(labels, []byte(p))
	}
	return labels, nil
}

// EncodeLabels serializes already-split labels into wire format.
func EncodeLabels(labels [][]byte) ([]byte, error) {
	total := 1 // terminating zero label
	for _, l := range labels {
		total += 1 + len(l)
	}
	if total > protocol.MaxNameWireLength {
		return nil, dogerr.Protocolf("encoded name length %d exceeds maximum of %d bytes", total, protocol.MaxNameWireLength)
	}

	out := make([]byte, 0, total)
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	out = append(out, 0)
	return out, nil
}
