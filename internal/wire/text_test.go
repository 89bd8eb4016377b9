package wire

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"printable ascii passes through", []byte("hello"), "hello"},
		{"backslash is escaped", []byte(`a\b`), `a\\b`},
		{"quote is escaped", []byte(`a"b`), `a\"b`},
		{"control byte is hex escaped", []byte{'a', 0x01, 'b'}, `a\x01b`},
		{"DEL is hex escaped", []byte{'a', 0x7F, 'b'}, `a\x7Fb`},
		{"invalid UTF-8 byte is hex escaped", []byte{0xFF}, `\xFF`},
		{"valid multi-byte UTF-8 passes through", []byte("café"), "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeText(tt.in); got != tt.want {
				t.Errorf("EscapeText(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextResult_JSONString(t *testing.T) {
	valid := NewTextResult([]byte("hello"))
	if got := valid.JSONString(); got != "hello" {
		t.Errorf("JSONString() = %q, want %q", got, "hello")
	}

	invalid := NewTextResult([]byte{0xFF, 'a'})
	want := "�a"
	if got := invalid.JSONString(); got != want {
		t.Errorf("JSONString() = %q, want %q", got, want)
	}
}
