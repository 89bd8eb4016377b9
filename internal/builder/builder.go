// Package builder assembles a Request message from user-facing inputs:
// header flags, the single question, and an optional EDNS(0) OPT record in
// the additional section.
package builder

import (
	"math/rand"

	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/protocol"
	"github.com/joshuafuller/dog/internal/rrtypes"
	"github.com/joshuafuller/dog/internal/wire"
)

// EDNSPolicy controls whether and how an OPT record is attached.
type EDNSPolicy int

const (
	// EDNSDisable omits the OPT record entirely.
	EDNSDisable EDNSPolicy = iota
	// EDNSHide attaches an OPT record without requesting DNSSEC data.
	EDNSHide
	// EDNSShow attaches an OPT record with the DNSSEC OK bit set.
	EDNSShow
)

// Tweaks carries the -Z-style header-bit and EDNS buffer-size overrides.
type Tweaks struct {
	AA      bool
	AD      bool
	CD      bool
	BufSize uint16 // 0 means "not set"; DefaultUDPPayloadSize applies.
}

// Request groups the inputs needed to build one query.
type Request struct {
	QName  string
	QType  uint16
	QClass uint16
	TxID   *uint16 // nil selects a random txid
	EDNS   EDNSPolicy
	Tweaks Tweaks
}

// Build assembles a wire-ready Message from r. Names are encoded as given;
// IDNA transformation (internal/idna) is the caller's responsibility before
// Build is called.
func Build(r Request) (message.Message, error) {
	labels, err := wire.SplitName(r.QName)
	if err != nil {
		return message.Message{}, err
	}

	txid := r.TxID
	var id uint16
	if txid != nil {
		id = *txid
	} else {
		id = uint16(rand.Intn(1 << 16))
	}

	h := message.Header{
		TxID:   id,
		Opcode: protocol.OpcodeQuery,
		RD:     true,
		AA:     r.Tweaks.AA,
		AD:     r.Tweaks.AD,
		CD:     r.Tweaks.CD,
	}

	m := message.Message{
		Header: h,
		Questions: []message.Question{
			{Name: wire.Name{Labels: labels}, QType: r.QType, QClass: r.QClass},
		},
	}

	if r.EDNS != EDNSDisable {
		bufSize := r.Tweaks.BufSize
		if bufSize == 0 {
			bufSize = protocol.DefaultUDPPayloadSize
		}
		m.Additionals = append(m.Additionals, optRecord(bufSize, r.EDNS == EDNSShow))
	}

	return m, nil
}

func optRecord(bufSize uint16, dnssecOK bool) message.ResourceRecord {
	var ttl uint32
	if dnssecOK {
		ttl = 0x00008000
	}
	return message.ResourceRecord{
		Name:   wire.Name{},
		RType:  rrtypes.TypeOPT,
		RClass: bufSize,
		TTL:    ttl,
		Record: rrtypes.OPT{UDPPayloadSize: bufSize, DO: dnssecOK},
	}
}

// ValidateTxID parses a caller-supplied --txid value, rejecting anything
// outside the 16-bit range as an ArgumentError.
func ValidateTxID(n int64) (uint16, error) {
	if n < 0 || n > 0xFFFF {
		return 0, &dogerr.ArgumentError{Field: "txid", Message: "must be between 0 and 65535"}
	}
	return uint16(n), nil
}
