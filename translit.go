package translit

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Sentinel bytes threaded through the substituted string when smart spacing
// is active. They are legal only because the substituted text is otherwise
// pure ASCII; ResolveSpacing removes every occurrence before output.
const (
	boundary = 0x80 // edge of a multi-character substitution
	resolved = 0x81 // boundary already accounted for as one space
)

// High-byte bands dropped outright: unpairable surrogate halves and the
// private use area. Bounds are exclusive.
const (
	dropBand1Lo, dropBand1Hi = 0x18, 0x1E
	dropBand2Lo, dropBand2Hi = 0xD7, 0xF9
)

// Transliterator owns a table store and a lazily populated page cache. The
// cache is append-only for the lifetime of the value and safe for concurrent
// use; the first goroutine to insert a page wins, duplicate loads of the
// same key are harmless.
type Transliterator struct {
	store PageStore
	mu    sync.RWMutex
	pages map[PageKey]*Page
}

// New creates a transliterator backed by store. A nil store serves every
// page as the all-underscore fallback.
func New(store PageStore) *Transliterator {
	return &Transliterator{
		store: store,
		pages: make(map[PageKey]*Page),
	}
}

// Transliterate replaces every scalar value outside 0x00–0x7F in text
// according to the page tables and opts. ASCII passes through unchanged, and
// ASCII-only input returns without touching the table store.
//
// Transliterate never fails: unloadable pages degrade to "_" placeholders
// and undecodable bytes are dropped.
func (t *Transliterator) Transliterate(text string, opts Options) string {
	if text == "" {
		return ""
	}
	o := opts.resolved()
	if o.German {
		text = foldGermanDiaeresis(text)
	}
	out := t.substitute(text, o)
	if o.SmartSpacing && !o.DeferredSmartSpacing {
		out = ResolveSpacing(out)
	}
	return out
}

// substitute is the scanner pass: one lookup per non-ASCII scalar, with
// sentinel wrapping when smart spacing is on.
func (t *Transliterator) substitute(text string, o Options) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if size == 1 && r < utf8.RuneSelf {
			b.WriteByte(byte(r))
			i++
			continue
		}
		if r == utf8.RuneError && size == 1 {
			// Not a scalar value (e.g. a stray surrogate half in the
			// input bytes): drop it.
			i++
			continue
		}
		if o.skipped(r) {
			b.WriteString(text[i : i+size])
			i += size
			continue
		}
		t.substituteRune(&b, r, o)
		i += size
	}
	return b.String()
}

func (t *Transliterator) substituteRune(b *strings.Builder, r rune, o Options) {
	high := r >> 8
	low := r & 0xFF
	if (high > dropBand1Lo && high < dropBand1Hi) ||
		(high > dropBand2Lo && high < dropBand2Hi) {
		return
	}
	if r == '—' && o.SmartSpacing {
		// Em-dash overrides its table entry so the spacing pass can
		// choose between inline and spaced hyphenation.
		b.WriteByte(boundary)
		b.WriteString("--")
		b.WriteByte(boundary)
		return
	}
	emoji := emojiPlane(high)
	if high > 0xFF && !emoji {
		b.WriteString("_")
		return
	}
	page := t.page(NewPageKey(high, o.German))
	rep := page[low]
	if !o.SmartSpacing {
		b.WriteString(rep)
		return
	}
	if rep == "_" || rep == "[?]" || wordOnly(rep) {
		b.WriteString(rep)
		return
	}
	if emoji {
		// Self-contained token: both edges pre-resolved to a space.
		b.WriteByte(boundary)
		b.WriteByte(resolved)
		b.WriteString(rep)
		b.WriteByte(resolved)
		b.WriteByte(boundary)
		return
	}
	b.WriteByte(boundary)
	b.WriteString(strings.TrimSpace(rep))
	b.WriteByte(boundary)
}

// page returns the cached page for key, loading and caching it on first
// access. A load failure caches the fallback page, so each key is attempted
// at most once per cache lifetime.
func (t *Transliterator) page(key PageKey) *Page {
	t.mu.RLock()
	page := t.pages[key]
	t.mu.RUnlock()
	if page != nil {
		return page
	}
	page = t.load(key)
	t.mu.Lock()
	if cached := t.pages[key]; cached != nil {
		page = cached // first writer wins
	} else {
		t.pages[key] = page
	}
	t.mu.Unlock()
	return page
}

func (t *Transliterator) load(key PageKey) *Page {
	if t.store == nil {
		return fallback
	}
	page, err := t.store.Load(key)
	if err != nil || page == nil {
		tracer().Errorf("page %s unavailable, substituting placeholders: %v", key, err)
		return fallback
	}
	tracer().Debugf("loaded page %s", key)
	return page
}

// emojiPlane reports whether high addresses one of the supported emoji rows.
func emojiPlane(high rune) bool {
	switch high {
	case 0x1F4, 0x1F6, 0x1F9:
		return true
	}
	return false
}

func wordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// wordOnly reports whether s is non-empty and consists of ASCII word
// characters only. Such replacements need no boundary sentinels.
func wordOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !wordByte(s[i]) {
			return false
		}
	}
	return true
}
