package textcodec_test

import (
	"errors"
	"testing"

	"pgnsplit/internal/textcodec"
)

func TestDecodeUTF8StripsBOM(t *testing.T) {
	got, err := textcodec.Decode([]byte("\xef\xbb\xbf[Event \"Test\"]"), "utf-8")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "[Event \"Test\"]" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	_, err := textcodec.Decode([]byte("[White \"M\xfcller\"]"), "")
	if !errors.Is(err, textcodec.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestDecodeLatin1(t *testing.T) {
	got, err := textcodec.Decode([]byte("[White \"M\xfcller\"]"), "ISO-8859-1")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "[White \"Müller\"]" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDecodeWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in windows-1252 but control codes in latin1.
	got, err := textcodec.Decode([]byte("{\x93best\x94}"), "cp1252")
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "{“best”}" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestDecodeUnsupported(t *testing.T) {
	if _, err := textcodec.Decode([]byte("x"), "ebcdic"); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestSupportedAndCanonical(t *testing.T) {
	tests := []struct {
		name      string
		canonical string
		supported bool
	}{
		{"", "utf-8", true},
		{" UTF8 ", "utf-8", true},
		{"Latin-1", "latin1", true},
		{"windows-1252", "windows-1252", true},
		{"koi8-r", "koi8-r", false},
	}
	for _, tt := range tests {
		if got := textcodec.Canonical(tt.name); got != tt.canonical {
			t.Errorf("Canonical(%q) = %q, want %q", tt.name, got, tt.canonical)
		}
		if got := textcodec.Supported(tt.name); got != tt.supported {
			t.Errorf("Supported(%q) = %v, want %v", tt.name, got, tt.supported)
		}
	}
	if names := textcodec.Names(); len(names) != 3 || names[0] != "latin1" {
		t.Fatalf("unexpected names: %v", names)
	}
}
