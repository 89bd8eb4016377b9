package wire

import "testing"

func TestReadName_Simple(t *testing.T) {
	// "example.com" uncompressed, terminated by a zero-length label.
	msg := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
	}

	name, end, err := ReadName(msg, 0)
	if err != nil {
		t.Fatalf("ReadName() error = %v, want nil", err)
	}
	if end != len(msg) {
		t.Errorf("end = %d, want %d", end, len(msg))
	}
	if got := name.String(); got != "example.com" {
		t.Errorf("name = %q, want %q", got, "example.com")
	}
}

func TestReadName_Compressed(t *testing.T) {
	// offset 0: "example.com" + terminator (12 bytes)
	// offset 12: "www" + pointer back to offset 0
	msg := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,
		3, 'w', 'w', 'w',
		0xC0, 0x00,
	}

	name, end, err := ReadName(msg, 13)
	if err != nil {
		t.Fatalf("ReadName() error = %v, want nil", err)
	}
	if want := 13 + 4 + 2; end != want {
		t.Errorf("end = %d, want %d", end, want)
	}
	if got := name.String(); got != "www.example.com" {
		t.Errorf("name = %q, want %q", got, "www.example.com")
	}
}

func TestReadName_RejectsForwardPointer(t *testing.T) {
	msg := []byte{
		0xC0, 0x05, // pointer at offset 0 targeting offset 5, which is >= its own offset
		0, 0, 0, 0, 0,
	}

	if _, _, err := ReadName(msg, 0); err == nil {
		t.Fatal("ReadName() error = nil, want an error for a forward-pointing compression pointer")
	}
}

func TestReadName_RejectsSelfPointer(t *testing.T) {
	msg := []byte{0xC0, 0x00}

	if _, _, err := ReadName(msg, 0); err == nil {
		t.Fatal("ReadName() error = nil, want an error for a self-referencing compression pointer")
	}
}

func TestReadName_RejectsLoop(t *testing.T) {
	// Two pointers that jump back and forth forever.
	msg := []byte{
		0xC0, 0x02,
		0xC0, 0x00,
	}

	if _, _, err := ReadName(msg, 0); err == nil {
		t.Fatal("ReadName() error = nil, want an error for a compression loop")
	}
}

func TestReadName_RejectsReservedLabelForm(t *testing.T) {
	for _, prefix := range []byte{0x40, 0x80} {
		msg := []byte{prefix, 0, 0}
		if _, _, err := ReadName(msg, 0); err == nil {
			t.Errorf("ReadName() with length-prefix 0x%02x: error = nil, want error", prefix)
		}
	}
}

func TestReadName_RejectsOversizedLabel(t *testing.T) {
	label := make([]byte, 64)
	label[0] = 63 + 1 // length byte claims 64, over the 63-byte max
	msg := append(label, 0)

	if _, _, err := ReadName(msg, 0); err == nil {
		t.Fatal("ReadName() error = nil, want error for a label over 63 bytes")
	}
}

func TestEncodeName_RoundTrip(t *testing.T) {
	cases := []string{"example.com", "example.com.", "a.b.c.d", "."}

	for _, name := range cases {
		encoded, err := EncodeName(name)
		if err != nil {
			t.Fatalf("EncodeName(%q) error = %v", name, err)
		}
		decoded, end, err := ReadName(encoded, 0)
		if err != nil {
			t.Fatalf("ReadName() on encoded %q: error = %v", name, err)
		}
		if end != len(encoded) {
			t.Errorf("ReadName() consumed %d bytes, want %d", end, len(encoded))
		}

		want := name
		if want != "." {
			want = trimTrailingDot(want)
		} else {
			want = "."
		}
		if got := decoded.String(); got != want {
			t.Errorf("round trip of %q = %q, want %q", name, got, want)
		}
	}
}

func trimTrailingDot(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}

func TestSplitName_RejectsEmptyLabel(t *testing.T) {
	if _, err := SplitName("a..b"); err == nil {
		t.Fatal("SplitName() error = nil, want error for an empty label")
	}
}

func TestSplitName_RejectsOversizedLabel(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := SplitName(string(long) + ".com"); err == nil {
		t.Fatal("SplitName() error = nil, want error for a label over 63 bytes")
	}
}
