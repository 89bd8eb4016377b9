// Package message assembles the wire codec's primitives (internal/wire)
// and the record-type decoders (internal/rrtypes) into whole-message
// encode/decode.
package message

import (
	"encoding/binary"

	"github.com/joshuafuller/dog/internal/protocol"
	"github.com/joshuafuller/dog/internal/rrtypes"
	"github.com/joshuafuller/dog/internal/wire"
)

// Header is the 12-byte fixed DNS header.
type Header struct {
	TxID    uint16
	QR      bool
	Opcode  protocol.Opcode
	AA      bool
	TC      bool
	RD      bool
	RA      bool
	Z       bool
	AD      bool
	CD      bool
	RCode   protocol.RCode
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// Question is one entry of a message's question section.
type Question struct {
	Name   wire.Name
	QType  uint16
	QClass uint16
}

// ResourceRecord is one decoded answer/authority/additional entry.
type ResourceRecord struct {
	Name     wire.Name
	RType    uint16
	RClass   uint16
	TTL      uint32
	RDLength uint16
	Record   rrtypes.Record
}

// Message is the full decoded representation: header plus its four
// sections. A Message owns every byte of its decoded state; nothing
// aliases the buffer it was decoded from.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}

func flagBit(set bool, mask uint16) uint16 {
	if set {
		return mask
	}
	return 0
}

func encodeHeader(h Header) []byte {
	b := make([]byte, 12)
	binary.BigEndian.PutUint16(b[0:2], h.TxID)

	flags := flagBit(h.QR, protocol.FlagQR)
	flags |= uint16(h.Opcode&0x0F) << 11
	flags |= flagBit(h.AA, protocol.FlagAA)
	flags |= flagBit(h.TC, protocol.FlagTC)
	flags |= flagBit(h.RD, protocol.FlagRD)
	flags |= flagBit(h.RA, protocol.FlagRA)
	flags |= flagBit(h.Z, protocol.FlagZ)
	flags |= flagBit(h.AD, protocol.FlagAD)
	flags |= flagBit(h.CD, protocol.FlagCD)
	flags |= uint16(h.RCode) & 0x0F
	binary.BigEndian.PutUint16(b[2:4], flags)

	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b
}

func decodeHeader(cur *wire.Cursor) (Header, error) {
	txid, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	flags, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	qd, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	an, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ns, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ar, err := cur.ReadUint16()
	if err != nil {
		return Header{}, err
	}

	return Header{
		TxID:    txid,
		QR:      flags&protocol.FlagQR != 0,
		Opcode:  protocol.Opcode(flags >> 11 & 0x0F),
		AA:      flags&protocol.FlagAA != 0,
		TC:      flags&protocol.FlagTC != 0,
		RD:      flags&protocol.FlagRD != 0,
		RA:      flags&protocol.FlagRA != 0,
		Z:       flags&protocol.FlagZ != 0,
		AD:      flags&protocol.FlagAD != 0,
		CD:      flags&protocol.FlagCD != 0,
		RCode:   protocol.RCode(flags & 0x0F),
		QDCount: qd,
		ANCount: an,
		NSCount: ns,
		ARCount: ar,
	}, nil
}

// Encode serializes a full Message to wire format. Section counts are
// always taken from the slice lengths, never from the Header's stored
// counts.
func Encode(m Message) ([]byte, error) {
	h := m.Header
	h.QDCount = uint16(len(m.Questions))
	h.ANCount = uint16(len(m.Answers))
	h.NSCount = uint16(len(m.Authorities))
	h.ARCount = uint16(len(m.Additionals))

	out := encodeHeader(h)

	for _, q := range m.Questions {
		nameBytes, err := wire.EncodeLabels(q.Name.Labels)
		if err != nil {
			return nil, err
		}
		out = append(out, nameBytes...)
		out = append(out, byte(q.QType>>8), byte(q.QType))
		out = append(out, byte(q.QClass>>8), byte(q.QClass))
	}

	for _, sec := range [][]ResourceRecord{m.Answers, m.Authorities, m.Additionals} {
		for _, rr := range sec {
			enc, err := encodeRR(rr)
			if err != nil {
				return nil, err
			}
			out = append(out, enc...)
		}
	}

	return out, nil
}

func encodeRR(rr ResourceRecord) ([]byte, error) {
	nameBytes, err := wire.EncodeLabels(rr.Name.Labels)
	if err != nil {
		return nil, err
	}
	rdata, err := rr.Record.RDEncode()
	if err != nil {
		return nil, err
	}

	out := append([]byte{}, nameBytes...)
	out = append(out, byte(rr.RType>>8), byte(rr.RType))
	out = append(out, byte(rr.RClass>>8), byte(rr.RClass))
	out = append(out, byte(rr.TTL>>24), byte(rr.TTL>>16), byte(rr.TTL>>8), byte(rr.TTL))
	rdlen := uint16(len(rdata))
	out = append(out, byte(rdlen>>8), byte(rdlen))
	out = append(out, rdata...)
	return out, nil
}

// Decode parses a full DNS message from raw wire bytes.
func Decode(raw []byte) (Message, error) {
	cur := wire.NewCursor(raw, 0)

	header, err := decodeHeader(cur)
	if err != nil {
		return Message{}, err
	}

	m := Message{Header: header}

	m.Questions = make([]Question, 0, header.QDCount)
	for i := uint16(0); i < header.QDCount; i++ {
		q, err := decodeQuestion(cur)
		if err != nil {
			return Message{}, err
		}
		m.Questions = append(m.Questions, q)
	}

	for _, spec := range []struct {
		count uint16
		dst   *[]ResourceRecord
	}{
		{header.ANCount, &m.Answers},
		{header.NSCount, &m.Authorities},
		{header.ARCount, &m.Additionals},
	} {
		recs := make([]ResourceRecord, 0, spec.count)
		for i := uint16(0); i < spec.count; i++ {
			rr, err := decodeRR(cur)
			if err != nil {
				return Message{}, err
			}
			recs = append(recs, rr)
		}
		*spec.dst = recs
	}

	return m, nil
}

func decodeQuestion(cur *wire.Cursor) (Question, error) {
	name, err := wire.ReadNameAt(cur)
	if err != nil {
		return Question{}, err
	}
	qtype, err := cur.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	qclass, err := cur.ReadUint16()
	if err != nil {
		return Question{}, err
	}
	return Question{Name: name, QType: qtype, QClass: qclass}, nil
}

func decodeRR(cur *wire.Cursor) (ResourceRecord, error) {
	name, err := wire.ReadNameAt(cur)
	if err != nil {
		return ResourceRecord{}, err
	}
	rtype, err := cur.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	rclass, err := cur.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}
	ttl, err := cur.ReadUint32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlength, err := cur.ReadUint16()
	if err != nil {
		return ResourceRecord{}, err
	}

	rec, err := rrtypes.Decode(rtype, cur, int(rdlength))
	if err != nil {
		return ResourceRecord{}, err
	}

	if opt, ok := rec.(rrtypes.OPT); ok {
		// OPT repurposes class as the sender's UDP payload size and TTL as
		// ext-rcode/version/flags.
		opt.UDPPayloadSize = rclass
		opt.ExtRCode = byte(ttl >> 24)
		opt.Version = byte(ttl >> 16)
		opt.DO = ttl&0x00008000 != 0
		rec = opt
	}

	return ResourceRecord{Name: name, RType: rtype, RClass: rclass, TTL: ttl, RDLength: rdlength, Record: rec}, nil
}
