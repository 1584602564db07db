package pagefile

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/translit"
)

func TestReaderStreamsEntries(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb'\n\n1/2"))
	want := []string{"a", "b'", "", "1/2"}
	for i, w := range want {
		entry, err := r.Next()
		if err != nil {
			t.Fatalf("entry %d: %v", i, err)
		}
		if entry != w {
			t.Fatalf("entry %d should be %q, is %q", i, w, entry)
		}
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after last entry, got %v", err)
	}
}

func TestReaderTrimsCarriageReturns(t *testing.T) {
	r := NewReader(strings.NewReader("a\r\nb\r\n"))
	for _, w := range []string{"a", "b"} {
		entry, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if entry != w {
			t.Fatalf("CRLF entry should be %q, is %q", w, entry)
		}
	}
}

func TestReaderStopsAfterPageSize(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < translit.PageSize+10; i++ {
		sb.WriteString("x\n")
	}
	r := NewReader(strings.NewReader(sb.String()))
	count := 0
	for {
		if _, err := r.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != translit.PageSize {
		t.Fatalf("reader should stop at %d entries, read %d", translit.PageSize, count)
	}
}

func TestReadPagePadsShortResource(t *testing.T) {
	page, err := ReadPage(strings.NewReader("AE\nae"))
	if err != nil {
		t.Fatalf("ReadPage failed: %v", err)
	}
	if page[0] != "AE" || page[1] != "ae" {
		t.Fatalf("entries not kept: %q %q", page[0], page[1])
	}
	for i := 2; i < translit.PageSize; i++ {
		if page[i] != "_" {
			t.Fatalf("entry %d should be padded with _, is %q", i, page[i])
		}
	}
}

func fixtureFS(t *testing.T) *FSStore {
	t.Helper()
	latin := make([]string, 0, 0xEA)
	for i := 0; i < 0xE9; i++ {
		latin = append(latin, "_")
	}
	latin = append(latin, "e'") // index 0xE9 = é
	return NewFSStore(fstest.MapFS{
		"x00.tab":   {Data: []byte(strings.Join(latin, "\n"))},
		"x00de.tab": {Data: []byte("_\n_")},
	})
}

func TestFSStoreLoad(t *testing.T) {
	store := fixtureFS(t)
	page, err := store.Load(translit.NewPageKey(0, false))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if page[0xE9] != "e'" {
		t.Fatalf("é entry should be e', is %q", page[0xE9])
	}
	if page[0xEA] != "_" {
		t.Fatalf("entries past the file end should pad to _, got %q", page[0xEA])
	}
}

func TestFSStoreGermanSibling(t *testing.T) {
	store := fixtureFS(t)
	if _, err := store.Load(translit.NewPageKey(0, true)); err != nil {
		t.Fatalf("German half page should load from x00de.tab: %v", err)
	}
}

func TestFSStoreMissingResource(t *testing.T) {
	store := fixtureFS(t)
	_, err := store.Load(translit.NewPageKey(0x20, false))
	if !errors.Is(err, translit.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestFSStoreFeedsEngine(t *testing.T) {
	trans := translit.New(fixtureFS(t))
	got := trans.Transliterate("café noir", translit.Options{SmartSpacing: true})
	if got != "caf e' noir" {
		t.Fatalf("café noir should be caf e' noir, is %q", got)
	}
}
