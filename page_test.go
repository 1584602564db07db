package translit

import (
	"errors"
	"testing"
)

func TestPageKeyResource(t *testing.T) {
	tests := []struct {
		high   rune
		german bool
		want   string
	}{
		{0x00, false, "x00"},
		{0x00, true, "x00de"},
		{0x04, false, "x04"},
		{0xFF, false, "xff"},
		{0x1F4, false, "x1f4"},
		{0x1F9, false, "x1f9"},
	}
	for _, tc := range tests {
		key := NewPageKey(tc.high, tc.german)
		if got := key.Resource(); got != tc.want {
			t.Fatalf("key (%#x, german=%v) should name %q, is %q", tc.high, tc.german, tc.want, got)
		}
		if key.High() != tc.high || key.German() != tc.german {
			t.Fatalf("key %s does not round-trip (%#x, %v)", key, key.High(), key.German())
		}
	}
}

func TestGermanIgnoredOffLowPage(t *testing.T) {
	if key := NewPageKey(0x04, true); key.German() {
		t.Fatalf("german flag must only apply to page 0, got %s", key)
	}
}

func TestNewPagePadsShortInput(t *testing.T) {
	page := NewPage([]string{"a", "b'"})
	if page[0] != "a" || page[1] != "b'" {
		t.Fatalf("entries not kept: %q %q", page[0], page[1])
	}
	for i := 2; i < PageSize; i++ {
		if page[i] != "_" {
			t.Fatalf("entry %d should be padded with _, is %q", i, page[i])
		}
	}
}

func TestNewPageDropsSurplus(t *testing.T) {
	entries := make([]string, PageSize+10)
	for i := range entries {
		entries[i] = "x"
	}
	page := NewPage(entries)
	if page[PageSize-1] != "x" {
		t.Fatalf("last entry lost: %q", page[PageSize-1])
	}
}

func TestRegistryNotFound(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Load(NewPageKey(0x20, false)); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	reg.Register(NewPageKey(0x20, false), []string{"--"})
	page, err := reg.Load(NewPageKey(0x20, false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if page[0] != "--" {
		t.Fatalf("registered entry lost: %q", page[0])
	}
}

func TestFallbackPageShape(t *testing.T) {
	page := FallbackPage()
	for i := range page {
		if page[i] != "_" {
			t.Fatalf("fallback entry %d is %q, want _", i, page[i])
		}
	}
}
