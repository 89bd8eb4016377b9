// Package protocol defines DNS wire-format constants per RFC 1035 and the
// EDNS(0) extension (RFC 6891), shared by the wire codec, the builder, and
// the dispatcher.
package protocol

import "strconv"

// Classes per RFC 1035 §3.2.4.
const (
	ClassIN DNSClass = 1
	ClassCH DNSClass = 3
	ClassHS DNSClass = 4
)

// DNSClass is a DNS query/record class.
type DNSClass uint16

// String returns the mnemonic for a class, or a numeric fallback.
func (c DNSClass) String() string {
	switch c {
	case ClassIN:
		return "IN"
	case ClassCH:
		return "CH"
	case ClassHS:
		return "HS"
	default:
		return "CLASS" + strconv.Itoa(int(c))
	}
}

// Opcode values per RFC 1035 §4.1.1. This client only ever builds OpcodeQuery.
const (
	OpcodeQuery Opcode = 0
)

// Opcode is the DNS header OPCODE field.
type Opcode uint8

// Header flag bit positions per RFC 1035 §4.1.1.
const (
	FlagQR uint16 = 1 << 15 // query/response
	FlagAA uint16 = 1 << 10 // authoritative answer
	FlagTC uint16 = 1 << 9  // truncated
	FlagRD uint16 = 1 << 8  // recursion desired
	FlagRA uint16 = 1 << 7  // recursion available
	FlagZ  uint16 = 1 << 6  // reserved, must be zero
	FlagAD uint16 = 1 << 5  // authentic data
	FlagCD uint16 = 1 << 4  // checking disabled
)

// RCode is the 4-bit response code carried in the header's low nibble.
type RCode uint8

// Name and label limits per RFC 1035 §3.1 and §4.1.4.
const (
	// MaxLabelLength is the maximum length, in bytes, of a single label.
	MaxLabelLength = 63

	// MaxLabelCount is the maximum number of labels in a name.
	MaxLabelCount = 127

	// MaxNameWireLength is the maximum wire-format length of a name,
	// including the terminating zero-length label.
	MaxNameWireLength = 255

	// MaxCompressionJumps bounds the number of pointer hops ReadName will
	// follow before declaring a loop. A well-formed message never needs
	// more than a handful; this is a generous backstop, not a realistic
	// limit, since each pointer must strictly decrease the offset.
	MaxCompressionJumps = 256
)

// CompressionMask identifies a compression pointer: the label-length byte's
// high two bits are both set (0xC0) per RFC 1035 §4.1.4.
const CompressionMask byte = 0xC0

// ReservedLabelMask is the reserved (and disallowed) label-length prefix
// 0x40 (binary 01 in the high two bits). The other reserved prefix, 0x80
// (binary 10), is checked separately by the name decoder.
const ReservedLabelMask byte = 0x40

// DefaultUDPPayloadSize is the EDNS(0) buffer size advertised when the
// caller does not override it with a BufSize tweak.
const DefaultUDPPayloadSize uint16 = 512
