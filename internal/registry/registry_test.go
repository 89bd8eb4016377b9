package registry

import "testing"

func TestTypeByMnemonic_CaseInsensitive(t *testing.T) {
	tests := []struct {
		in   string
		want uint16
	}{
		{"A", 1}, {"a", 1}, {"Aaaa", 28}, {"MX", 15}, {"mx", 15}, {"ANY", 255},
	}
	for _, tt := range tests {
		got, ok := TypeByMnemonic(tt.in)
		if !ok {
			t.Errorf("TypeByMnemonic(%q) not found", tt.in)
			continue
		}
		if got != tt.want {
			t.Errorf("TypeByMnemonic(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTypeByMnemonic_Unknown(t *testing.T) {
	if _, ok := TypeByMnemonic("NOTAREALTYPE"); ok {
		t.Error("TypeByMnemonic(NOTAREALTYPE) ok = true, want false")
	}
}

func TestMnemonicByType_RoundTrip(t *testing.T) {
	for mnemonic, code := range byMnemonic {
		got, ok := MnemonicByType(code)
		if !ok || got != mnemonic {
			t.Errorf("MnemonicByType(%d) = %q, %v; want %q, true", code, got, ok, mnemonic)
		}
	}
}

func TestClassByMnemonic(t *testing.T) {
	tests := map[string]uint16{"IN": 1, "ch": 3, "HS": 4}
	for m, want := range tests {
		got, ok := ClassByMnemonic(m)
		if !ok || got != want {
			t.Errorf("ClassByMnemonic(%q) = %d, %v; want %d, true", m, got, ok, want)
		}
	}
	if _, ok := ClassByMnemonic("XX"); ok {
		t.Error("ClassByMnemonic(XX) ok = true, want false")
	}
}
