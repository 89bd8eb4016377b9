package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsZeroValue(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if len(f.Nameservers) != 0 || f.Transport != "" {
		t.Errorf("Load() on missing file = %+v, want zero value", f)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dog.toml")
	content := `
nameservers = ["1.1.1.1", "8.8.8.8"]
transport = "tls"
edns = "show"
bufsize = 4096
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Nameservers) != 2 || f.Nameservers[0] != "1.1.1.1" {
		t.Errorf("Nameservers = %v, want [1.1.1.1 8.8.8.8]", f.Nameservers)
	}
	if f.Transport != "tls" {
		t.Errorf("Transport = %q, want %q", f.Transport, "tls")
	}
	if f.BufSize != 4096 {
		t.Errorf("BufSize = %d, want 4096", f.BufSize)
	}
	if f.EDNS != "show" {
		t.Errorf("EDNS = %q, want %q", f.EDNS, "show")
	}
}

func TestLoad_InvalidTOMLIsArgumentError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want error for malformed TOML")
	}
}
