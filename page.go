package translit

import (
	"errors"
	"fmt"
)

// PageSize is the number of replacement entries per page, one per low byte.
const PageSize = 256

// Page is one row of the code point space: replacement strings for the 256
// scalars sharing a high byte, indexed by the low byte.
type Page [PageSize]string

// PageKey addresses a page. Keys are fixed-point with one fractional bit so
// that the German variant of the low page (the "half page" between 0x00 and
// 0x01) has a key of its own: key = high<<1, with bit 0 set for German.
type PageKey uint16

// NewPageKey computes the page key for a scalar's high byte. The German half
// page substitutes for page 0 only; german is ignored for any other page.
func NewPageKey(high rune, german bool) PageKey {
	k := PageKey(high) << 1
	if german && high == 0 {
		k |= 1
	}
	return k
}

// High returns the high byte the key addresses.
func (k PageKey) High() rune { return rune(k >> 1) }

// German reports whether the key addresses the German half page.
func (k PageKey) German() bool { return k&1 != 0 }

// Resource names the table-store resource for this key: the integer part of
// the key as zero-padded lowercase hex ("x00", "x1f4"), with the German half
// page as the distinguished sibling "x00de".
func (k PageKey) Resource() string {
	if k.German() {
		return fmt.Sprintf("x%02xde", k.High())
	}
	return fmt.Sprintf("x%02x", k.High())
}

func (k PageKey) String() string { return k.Resource() }

// PageStore resolves page keys to replacement pages. It is the boundary to
// the external table store. Load errors are tolerated by the engine: any
// failure degrades to an all-underscore page.
type PageStore interface {
	Load(key PageKey) (*Page, error)
}

// ErrPageNotFound is returned by stores for keys without a resource.
var ErrPageNotFound = errors.New("translit: page not found")

// NewPage builds a page from up to PageSize entries in low-byte order.
// Missing entries are padded with "_"; surplus entries are dropped. Table
// files occasionally ship short, so padding is the documented behavior, not
// an error.
func NewPage(entries []string) *Page {
	page := &Page{}
	n := copy(page[:], entries)
	for i := n; i < PageSize; i++ {
		page[i] = "_"
	}
	return page
}

var fallback = func() *Page {
	return NewPage(nil)
}()

// FallbackPage is the all-underscore page substituted for unloadable keys.
func FallbackPage() *Page { return fallback }

// Registry is an in-memory PageStore: an explicit mapping from page key to
// page, with a hard not-found branch instead of any lookup-by-name scheme.
type Registry struct {
	pages map[PageKey]*Page
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pages: make(map[PageKey]*Page)}
}

// Register associates key with the page built from entries (padded like
// NewPage). Registering a key twice replaces the earlier page.
func (reg *Registry) Register(key PageKey, entries []string) {
	page := NewPage(entries)
	assert(len(page) == PageSize, "registered page must have 256 entries")
	reg.pages[key] = page
}

// Load returns the page registered for key, or ErrPageNotFound.
func (reg *Registry) Load(key PageKey) (*Page, error) {
	if page, ok := reg.pages[key]; ok {
		return page, nil
	}
	return nil, ErrPageNotFound
}
