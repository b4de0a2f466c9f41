package utils

import (
	"strings"
	"testing"
	"time"
)

func TestDecodeDataURLVariants(t *testing.T) {
	u := New()

	fromURL, err := u.DecodeDataURL("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(fromURL) != "hello" {
		t.Fatalf("expected hello, got %q", fromURL)
	}

	bare, err := u.DecodeDataURL("aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(bare) != "hello" {
		t.Fatalf("expected hello, got %q", bare)
	}

	if _, err := u.DecodeDataURL("data:image/png;base64"); err == nil {
		t.Fatal("expected error for data URL without comma")
	}

	if _, err := u.DecodeDataURL("!!not-base64!!"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestMakeDataURLDefaultsContentType(t *testing.T) {
	u := New()

	url := u.MakeDataURL("", []byte("x"))
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Fatalf("expected jpeg default, got %q", url)
	}

	decoded, err := u.DecodeDataURL(url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(decoded) != "x" {
		t.Fatalf("round trip mismatch: %q", decoded)
	}
}

func TestNewULIDFromTimestampIsSortable(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	later, err := u.NewULIDFromTimestamp(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !(earlier < later) {
		t.Fatalf("expected lexicographic ordering, got %q >= %q", earlier, later)
	}
}
