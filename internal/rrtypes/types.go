// Package rrtypes implements the per-record-type rdata contracts: a closed
// discriminated union keyed by numeric type code, with Other{code, bytes}
// as the open-world catch-all.
package rrtypes

import (
	"encoding/base64"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/joshuafuller/dog/internal/wire"
)

// Numeric type codes for the closed set of record types this package
// defines decoders for.
const (
	TypeA          = 1
	TypeNS         = 2
	TypeCNAME      = 5
	TypeSOA        = 6
	TypePTR        = 12
	TypeHINFO      = 13
	TypeMX         = 15
	TypeTXT        = 16
	TypeAAAA       = 28
	TypeLOC        = 29
	TypeSRV        = 33
	TypeNAPTR      = 35
	TypeSSHFP      = 44
	TypeOPT        = 41
	TypeTLSA       = 52
	TypeOPENPGPKEY = 61
	TypeEUI48      = 108
	TypeEUI64      = 109
	TypeURI        = 256
	TypeCAA        = 257
)

// Record is implemented by every decoded rdata variant, including Other.
type Record interface {
	// Type returns the numeric record type this value decodes.
	Type() uint16
	// RDEncode serializes the rdata back to wire format. Names embedded in
	// rdata are always encoded uncompressed.
	RDEncode() ([]byte, error)
	// String renders the record for text/table output.
	String() string
}

// ---- A / AAAA ----

type A struct{ Addr [4]byte }

func (r A) Type() uint16 { return TypeA }
func (r A) RDEncode() ([]byte, error) {
	b := make([]byte, 4)
	copy(b, r.Addr[:])
	return b, nil
}
func (r A) String() string { return net.IP(r.Addr[:]).String() }

type AAAA struct{ Addr [16]byte }

func (r AAAA) Type() uint16 { return TypeAAAA }
func (r AAAA) RDEncode() ([]byte, error) {
	b := make([]byte, 16)
	copy(b, r.Addr[:])
	return b, nil
}
func (r AAAA) String() string { return net.IP(r.Addr[:]).String() }

// ---- EUI48 / EUI64 ----

type EUI48 struct{ Addr [6]byte }

func (r EUI48) Type() uint16 { return TypeEUI48 }
func (r EUI48) RDEncode() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, r.Addr[:])
	return b, nil
}
func (r EUI48) String() string { return formatEUI(r.Addr[:]) }

type EUI64 struct{ Addr [8]byte }

func (r EUI64) Type() uint16 { return TypeEUI64 }
func (r EUI64) RDEncode() ([]byte, error) {
	b := make([]byte, 8)
	copy(b, r.Addr[:])
	return b, nil
}
func (r EUI64) String() string { return formatEUI(r.Addr[:]) }

func formatEUI(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, "-")
}

// ---- Names-only records ----

type CNAME struct{ Target wire.Name }

func (r CNAME) Type() uint16              { return TypeCNAME }
func (r CNAME) RDEncode() ([]byte, error) { return encodeName(r.Target) }
func (r CNAME) String() string            { return r.Target.String() }

type NS struct{ Target wire.Name }

func (r NS) Type() uint16              { return TypeNS }
func (r NS) RDEncode() ([]byte, error) { return encodeName(r.Target) }
func (r NS) String() string            { return r.Target.String() }

type PTR struct{ Target wire.Name }

func (r PTR) Type() uint16              { return TypePTR }
func (r PTR) RDEncode() ([]byte, error) { return encodeName(r.Target) }
func (r PTR) String() string            { return r.Target.String() }

func encodeName(n wire.Name) ([]byte, error) {
	return wire.EncodeLabels(n.Labels)
}

// ---- MX ----

type MX struct {
	Preference uint16
	Exchange   wire.Name
}

func (r MX) Type() uint16 { return TypeMX }
func (r MX) RDEncode() ([]byte, error) {
	name, err := encodeName(r.Exchange)
	if err != nil {
		return nil, err
	}
	return append(putUint16(r.Preference), name...), nil
}
func (r MX) String() string { return fmt.Sprintf("%d %s", r.Preference, r.Exchange.String()) }

// ---- SOA ----

type SOA struct {
	MName   wire.Name
	RName   wire.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (r SOA) Type() uint16 { return TypeSOA }
func (r SOA) RDEncode() ([]byte, error) {
	mname, err := encodeName(r.MName)
	if err != nil {
		return nil, err
	}
	rname, err := encodeName(r.RName)
	if err != nil {
		return nil, err
	}
	out := append([]byte{}, mname...)
	out = append(out, rname...)
	out = append(out, putUint32(r.Serial)...)
	out = append(out, putUint32(r.Refresh)...)
	out = append(out, putUint32(r.Retry)...)
	out = append(out, putUint32(r.Expire)...)
	out = append(out, putUint32(r.Minimum)...)
	return out, nil
}
func (r SOA) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", r.MName.String(), r.RName.String(), r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

// ---- SRV ----

type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   wire.Name
}

func (r SRV) Type() uint16 { return TypeSRV }
func (r SRV) RDEncode() ([]byte, error) {
	target, err := encodeName(r.Target)
	if err != nil {
		return nil, err
	}
	out := append(putUint16(r.Priority), putUint16(r.Weight)...)
	out = append(out, putUint16(r.Port)...)
	out = append(out, target...)
	return out, nil
}
func (r SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Priority, r.Weight, r.Port, r.Target.String())
}

// ---- HINFO ----

type HINFO struct {
	CPU wire.TextResult
	OS  wire.TextResult
}

func (r HINFO) Type() uint16 { return TypeHINFO }
func (r HINFO) RDEncode() ([]byte, error) {
	out := encodeCharString(r.CPU.Raw)
	out = append(out, encodeCharString(r.OS.Raw)...)
	return out, nil
}
func (r HINFO) String() string {
	return fmt.Sprintf("%q %q", wire.EscapeText(r.CPU.Raw), wire.EscapeText(r.OS.Raw))
}

func encodeCharString(b []byte) []byte {
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(len(b)))
	return append(out, b...)
}

// ---- TXT ----

type TXT struct{ Strings []wire.TextResult }

func (r TXT) Type() uint16 { return TypeTXT }
func (r TXT) RDEncode() ([]byte, error) {
	var out []byte
	for _, s := range r.Strings {
		out = append(out, encodeCharString(s.Raw)...)
	}
	return out, nil
}
func (r TXT) String() string {
	parts := make([]string, len(r.Strings))
	for i, s := range r.Strings {
		parts[i] = fmt.Sprintf("%q", wire.EscapeText(s.Raw))
	}
	return strings.Join(parts, " ")
}

// ---- NAPTR ----

type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       wire.TextResult
	Services    wire.TextResult
	Regexp      wire.TextResult
	Replacement wire.Name
}

func (r NAPTR) Type() uint16 { return TypeNAPTR }
func (r NAPTR) RDEncode() ([]byte, error) {
	repl, err := encodeName(r.Replacement)
	if err != nil {
		return nil, err
	}
	out := append(putUint16(r.Order), putUint16(r.Preference)...)
	out = append(out, encodeCharString(r.Flags.Raw)...)
	out = append(out, encodeCharString(r.Services.Raw)...)
	out = append(out, encodeCharString(r.Regexp.Raw)...)
	out = append(out, repl...)
	return out, nil
}
func (r NAPTR) String() string {
	return fmt.Sprintf("%d %d %q %q %q %s", r.Order, r.Preference,
		wire.EscapeText(r.Flags.Raw), wire.EscapeText(r.Services.Raw), wire.EscapeText(r.Regexp.Raw), r.Replacement.String())
}

// ---- CAA ----

type CAA struct {
	Flags byte
	Tag   []byte
	Value []byte
}

func (r CAA) Type() uint16    { return TypeCAA }
func (r CAA) Critical() bool  { return r.Flags&0x80 != 0 }
func (r CAA) RDEncode() ([]byte, error) {
	out := []byte{r.Flags, byte(len(r.Tag))}
	out = append(out, r.Tag...)
	out = append(out, r.Value...)
	return out, nil
}
func (r CAA) String() string {
	return fmt.Sprintf("%d %s %q", r.Flags, string(r.Tag), wire.EscapeText(r.Value))
}

// ---- SSHFP ----

type SSHFP struct {
	Algorithm   byte
	FPType      byte
	Fingerprint []byte
}

func (r SSHFP) Type() uint16 { return TypeSSHFP }
func (r SSHFP) RDEncode() ([]byte, error) {
	out := []byte{r.Algorithm, r.FPType}
	return append(out, r.Fingerprint...), nil
}
func (r SSHFP) String() string {
	return fmt.Sprintf("%d %d %x", r.Algorithm, r.FPType, r.Fingerprint)
}

// ---- TLSA ----

type TLSA struct {
	Usage        byte
	Selector     byte
	MatchingType byte
	Association  []byte
}

func (r TLSA) Type() uint16 { return TypeTLSA }
func (r TLSA) RDEncode() ([]byte, error) {
	out := []byte{r.Usage, r.Selector, r.MatchingType}
	return append(out, r.Association...), nil
}
func (r TLSA) String() string {
	return fmt.Sprintf("%d %d %d %x", r.Usage, r.Selector, r.MatchingType, r.Association)
}

// ---- OPENPGPKEY ----

type OPENPGPKEY struct{ Key []byte }

func (r OPENPGPKEY) Type() uint16            { return TypeOPENPGPKEY }
func (r OPENPGPKEY) RDEncode() ([]byte, error) { return append([]byte{}, r.Key...), nil }
func (r OPENPGPKEY) String() string          { return base64Encode(r.Key) }

// ---- URI ----

type URI struct {
	Priority uint16
	Weight   uint16
	Target   []byte
}

func (r URI) Type() uint16 { return TypeURI }
func (r URI) RDEncode() ([]byte, error) {
	out := append(putUint16(r.Priority), putUint16(r.Weight)...)
	return append(out, r.Target...), nil
}
func (r URI) String() string {
	return fmt.Sprintf("%d %d %q", r.Priority, r.Weight, string(r.Target))
}

// ---- LOC ----

// LOC preserves the raw version/size/precision nibbles exactly as decoded;
// out-of-range nibbles are kept rather than rejected.
type LOC struct {
	Version    byte
	SizeRaw    byte
	HorizPre   byte
	VertPre    byte
	Latitude   uint32
	Longitude  uint32
	Altitude   uint32
}

func (r LOC) Type() uint16 { return TypeLOC }
func (r LOC) RDEncode() ([]byte, error) {
	out := []byte{r.Version, r.SizeRaw, r.HorizPre, r.VertPre}
	out = append(out, putUint32(r.Latitude)...)
	out = append(out, putUint32(r.Longitude)...)
	out = append(out, putUint32(r.Altitude)...)
	return out, nil
}
func (r LOC) String() string {
	return fmt.Sprintf("%s %s %s (size=%s horiz=%s vert=%s)",
		locAngle(r.Latitude, true), locAngle(r.Longitude, false), locAltitude(r.Altitude),
		locPrecision(r.SizeRaw), locPrecision(r.HorizPre), locPrecision(r.VertPre))
}

// locPrecision renders a size/precision nibble byte, flagging base nibbles
// above 9 as out-of-range rather than rejecting them.
func locPrecision(b byte) string {
	base := b >> 4
	exp := b & 0x0F
	if base > 9 {
		return "<out-of-range>"
	}
	cm := pow10(int(exp))
	meters := float64(int(base)*cm) / 100.0
	return strconv.FormatFloat(meters, 'f', -1, 64) + "m"
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func locAngle(v uint32, isLat bool) string {
	const equator = int64(1) << 31
	delta := int64(v) - equator
	// 1000ths of an arcsecond.
	totalMillis := delta
	deg := totalMillis / (1000 * 3600)
	rem := totalMillis % (1000 * 3600)
	if rem < 0 {
		rem = -rem
	}
	min := rem / (1000 * 60)
	sec := float64(rem%(1000*60)) / 1000.0
	hemi := "N"
	if !isLat {
		hemi = "E"
	}
	if deg < 0 {
		if isLat {
			hemi = "S"
		} else {
			hemi = "W"
		}
		deg = -deg
	}
	return fmt.Sprintf("%d %d %.3f %s", deg, min, sec, hemi)
}

func locAltitude(v uint32) string {
	const base = int64(10000000)
	cm := int64(v) - base
	return strconv.FormatFloat(float64(cm)/100.0, 'f', -1, 64) + "m"
}

// ---- OPT (EDNS pseudo-record) ----

// OPT's Class field is repurposed as the sender's UDP payload size; its TTL
// is repurposed as extended-rcode/version/flags per RFC 6891 §6.1.3.
type OPT struct {
	UDPPayloadSize uint16
	ExtRCode       byte
	Version        byte
	DO             bool // DNSSEC OK bit, top bit of the flags word
	Options        []byte
}

func (r OPT) Type() uint16 { return TypeOPT }
func (r OPT) RDEncode() ([]byte, error) {
	return append([]byte{}, r.Options...), nil
}
func (r OPT) String() string {
	return fmt.Sprintf("udp=%d version=%d do=%v", r.UDPPayloadSize, r.Version, r.DO)
}

// ---- Other (open world) ----

type Other struct {
	Code uint16
	Raw  []byte
}

func (r Other) Type() uint16              { return r.Code }
func (r Other) RDEncode() ([]byte, error) { return append([]byte{}, r.Raw...), nil }
func (r Other) String() string            { return fmt.Sprintf("\\# %d %x", len(r.Raw), r.Raw) }

func base64Encode(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func putUint16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }
func putUint32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}
