// Package registry is the closed, static mapping between record-type
// mnemonics and their numeric codes. It also lists mnemonics that are
// accepted as query types but never decode to anything but
// internal/rrtypes.Other (IXFR, ANY, AFSDB, and friends).
package registry

import "strings"

// entry pairs a numeric type code with its canonical mnemonic.
type entry struct {
	code     uint16
	mnemonic string
}

// table is the full set of mnemonics this tool accepts as query-type
// input: decodable types first, followed by accepted-but-not-decodable
// types that fall through to Other.
var table = []entry{
	{1, "A"},
	{28, "AAAA"},
	{257, "CAA"},
	{5, "CNAME"},
	{108, "EUI48"},
	{109, "EUI64"},
	{13, "HINFO"},
	{29, "LOC"},
	{15, "MX"},
	{35, "NAPTR"},
	{2, "NS"},
	{61, "OPENPGPKEY"},
	{41, "OPT"},
	{12, "PTR"},
	{6, "SOA"},
	{33, "SRV"},
	{44, "SSHFP"},
	{52, "TLSA"},
	{16, "TXT"},
	{256, "URI"},

	// Accepted as query types but responses of these types fall through to
	// Other: the registry has nothing type-specific to decode for them.
	{251, "IXFR"},
	{252, "AXFR"},
	{255, "ANY"},
	{18, "AFSDB"},
}

var byMnemonic map[string]uint16
var byCode map[uint16]string

func init() {
	byMnemonic = make(map[string]uint16, len(table))
	byCode = make(map[uint16]string, len(table))
	for _, e := range table {
		byMnemonic[e.mnemonic] = e.code
		byCode[e.code] = e.mnemonic
	}
}

// TypeByMnemonic resolves a case-insensitive mnemonic (e.g. "a", "Aaaa",
// "MX") to its numeric type code. ok is false for unrecognized mnemonics.
func TypeByMnemonic(mnemonic string) (code uint16, ok bool) {
	code, ok = byMnemonic[strings.ToUpper(mnemonic)]
	return
}

// MnemonicByType resolves a numeric type code to its canonical mnemonic.
// ok is false for codes outside the closed set (callers should fall back to
// a numeric "TYPEn" rendering, as the render package does).
func MnemonicByType(code uint16) (mnemonic string, ok bool) {
	mnemonic, ok = byCode[code]
	return
}

// ClassByMnemonic resolves IN/CH/HS (case-insensitive) to a class value.
func ClassByMnemonic(mnemonic string) (code uint16, ok bool) {
	switch strings.ToUpper(mnemonic) {
	case "IN":
		return 1, true
	case "CH":
		return 3, true
	case "HS":
		return 4, true
	default:
		return 0, false
	}
}
