package rrtypes

import (
	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/wire"
)

// Decode parses rdata for the given type code, reading from cur (positioned
// at the start of rdata, over the full message buffer so embedded names can
// follow compression pointers) and consuming exactly rdlength bytes.
//
// Any deficit or excess left in the rdata window after a type-specific
// decoder runs is itself a protocol error: parsing must consume exactly
// the bytes a record claims.
func Decode(code uint16, cur *wire.Cursor, rdlength int) (Record, error) {
	start := cur.Pos()
	if start+rdlength > cur.Len() {
		return nil, dogerr.Protocolf("record claims rdlength %d but only %d bytes remain", rdlength, cur.Len()-start)
	}

	rec, err := decodeOne(code, cur, rdlength)
	if err != nil {
		return nil, err
	}

	consumed := cur.Pos() - start
	if consumed != rdlength {
		return nil, dogerr.Protocolf("record consumed %d bytes but rdlength was %d", consumed, rdlength)
	}
	return rec, nil
}

func decodeOne(code uint16, cur *wire.Cursor, rdlength int) (Record, error) {
	switch code {
	case TypeA:
		return decodeA(cur, rdlength)
	case TypeAAAA:
		return decodeAAAA(cur, rdlength)
	case TypeEUI48:
		return decodeEUI48(cur, rdlength)
	case TypeEUI64:
		return decodeEUI64(cur, rdlength)
	case TypeCNAME:
		n, err := wire.ReadNameAt(cur)
		return CNAME{Target: n}, err
	case TypeNS:
		n, err := wire.ReadNameAt(cur)
		return NS{Target: n}, err
	case TypePTR:
		n, err := wire.ReadNameAt(cur)
		return PTR{Target: n}, err
	case TypeMX:
		return decodeMX(cur)
	case TypeSOA:
		return decodeSOA(cur)
	case TypeSRV:
		return decodeSRV(cur)
	case TypeHINFO:
		return decodeHINFO(cur)
	case TypeTXT:
		return decodeTXT(cur, rdlength)
	case TypeNAPTR:
		return decodeNAPTR(cur)
	case TypeCAA:
		return decodeCAA(cur, rdlength)
	case TypeSSHFP:
		return decodeSSHFP(cur, rdlength)
	case TypeTLSA:
		return decodeTLSA(cur, rdlength)
	case TypeOPENPGPKEY:
		return decodeOPENPGPKEY(cur, rdlength)
	case TypeURI:
		return decodeURI(cur, rdlength)
	case TypeLOC:
		return decodeLOC(cur, rdlength)
	case TypeOPT:
		return decodeOPT(cur, rdlength)
	default:
		raw, err := cur.ReadBytes(rdlength)
		if err != nil {
			return nil, err
		}
		return Other{Code: code, Raw: raw}, nil
	}
}

func decodeA(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength != 4 {
		return nil, dogerr.Protocolf("record length should be 4, got %d", rdlength)
	}
	b, err := cur.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	var a A
	copy(a.Addr[:], b)
	return a, nil
}

func decodeAAAA(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength != 16 {
		return nil, dogerr.Protocolf("record length should be 16, got %d", rdlength)
	}
	b, err := cur.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	var a AAAA
	copy(a.Addr[:], b)
	return a, nil
}

func decodeEUI48(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength != 6 {
		return nil, dogerr.Protocolf("record length should be 6, got %d", rdlength)
	}
	b, err := cur.ReadBytes(6)
	if err != nil {
		return nil, err
	}
	var e EUI48
	copy(e.Addr[:], b)
	return e, nil
}

func decodeEUI64(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength != 8 {
		return nil, dogerr.Protocolf("record length should be 8, got %d", rdlength)
	}
	b, err := cur.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	var e EUI64
	copy(e.Addr[:], b)
	return e, nil
}

func decodeMX(cur *wire.Cursor) (Record, error) {
	pref, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	name, err := wire.ReadNameAt(cur)
	if err != nil {
		return nil, err
	}
	return MX{Preference: pref, Exchange: name}, nil
}

func decodeSOA(cur *wire.Cursor) (Record, error) {
	mname, err := wire.ReadNameAt(cur)
	if err != nil {
		return nil, err
	}
	rname, err := wire.ReadNameAt(cur)
	if err != nil {
		return nil, err
	}
	serial, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	refresh, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	retry, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	expire, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	minimum, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	return SOA{MName: mname, RName: rname, Serial: serial, Refresh: refresh, Retry: retry, Expire: expire, Minimum: minimum}, nil
}

func decodeSRV(cur *wire.Cursor) (Record, error) {
	priority, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	port, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	target, err := wire.ReadNameAt(cur)
	if err != nil {
		return nil, err
	}
	return SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func decodeHINFO(cur *wire.Cursor) (Record, error) {
	cpu, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	os, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	return HINFO{CPU: wire.NewTextResult(cpu), OS: wire.NewTextResult(os)}, nil
}

func decodeTXT(cur *wire.Cursor, rdlength int) (Record, error) {
	start := cur.Pos()
	var strs []wire.TextResult
	for cur.Pos()-start < rdlength {
		s, err := cur.ReadCharString()
		if err != nil {
			return nil, err
		}
		strs = append(strs, wire.NewTextResult(s))
	}
	return TXT{Strings: strs}, nil
}

func decodeNAPTR(cur *wire.Cursor) (Record, error) {
	order, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	pref, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	flags, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	services, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	// A malformed regex is preserved verbatim: no validation beyond the
	// character-string length contract.
	regexp, err := cur.ReadCharString()
	if err != nil {
		return nil, err
	}
	replacement, err := wire.ReadNameAt(cur)
	if err != nil {
		return nil, err
	}
	return NAPTR{
		Order: order, Preference: pref,
		Flags: wire.NewTextResult(flags), Services: wire.NewTextResult(services), Regexp: wire.NewTextResult(regexp),
		Replacement: replacement,
	}, nil
}

func decodeCAA(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 2 {
		return nil, dogerr.Protocolf("record length should be at least 2, got %d", rdlength)
	}
	flags, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	taglen, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	tag, err := cur.ReadBytes(int(taglen))
	if err != nil {
		return nil, err
	}
	valueLen := rdlength - 2 - int(taglen)
	if valueLen < 0 {
		return nil, dogerr.Protocolf("record tag length %d exceeds remaining rdata", taglen)
	}
	value, err := cur.ReadBytes(valueLen)
	if err != nil {
		return nil, err
	}
	return CAA{Flags: flags, Tag: tag, Value: value}, nil
}

func decodeSSHFP(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 2 {
		return nil, dogerr.Protocolf("record length should be at least 2, got %d", rdlength)
	}
	algo, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	fptype, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	fp, err := cur.ReadBytes(rdlength - 2)
	if err != nil {
		return nil, err
	}
	return SSHFP{Algorithm: algo, FPType: fptype, Fingerprint: fp}, nil
}

func decodeTLSA(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 3 {
		return nil, dogerr.Protocolf("record length should be at least 3, got %d", rdlength)
	}
	usage, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	selector, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	matchType, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	assoc, err := cur.ReadBytes(rdlength - 3)
	if err != nil {
		return nil, err
	}
	return TLSA{Usage: usage, Selector: selector, MatchingType: matchType, Association: assoc}, nil
}

func decodeOPENPGPKEY(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 1 {
		return nil, dogerr.Protocolf("record length should be at least 1, got %d", rdlength)
	}
	key, err := cur.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return OPENPGPKEY{Key: key}, nil
}

func decodeURI(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 5 {
		return nil, dogerr.Protocolf("record length should be at least 5, got %d", rdlength)
	}
	priority, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	target, err := cur.ReadBytes(rdlength - 4)
	if err != nil {
		return nil, err
	}
	return URI{Priority: priority, Weight: weight, Target: target}, nil
}

func decodeLOC(cur *wire.Cursor, rdlength int) (Record, error) {
	if rdlength < 16 {
		return nil, dogerr.Protocolf("record length should be at least 16, got %d", rdlength)
	}
	version, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, dogerr.Protocolf("record specifies version %d, expected up to 0", version)
	}
	size, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	horizPre, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	vertPre, err := cur.ReadUint8()
	if err != nil {
		return nil, err
	}
	lat, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	lon, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	alt, err := cur.ReadUint32()
	if err != nil {
		return nil, err
	}
	return LOC{Version: version, SizeRaw: size, HorizPre: horizPre, VertPre: vertPre, Latitude: lat, Longitude: lon, Altitude: alt}, nil
}

// decodeOPT reads the EDNS(0) pseudo-record's rdata. Its class field
// carries the UDP payload size and its TTL carries ext-rcode/version/flags;
// both are read by the caller (internal/message) from the surrounding RR
// header and passed in separately from rdata, so this only parses options.
func decodeOPT(cur *wire.Cursor, rdlength int) (Record, error) {
	opts, err := cur.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return OPT{Options: opts}, nil
}
