package translit

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer returns a transform.Transformer that applies the full
// transliteration pipeline, so the engine can be chained into x/text
// transform stacks (transform.String, transform.NewReader, ...).
//
// With smart spacing enabled and not deferred, the spacing pass needs the
// whole substituted text, so output is buffered internally and released at
// the end of input. In all other modes output streams through as soon as it
// is produced.
func (t *Transliterator) Transformer(opts Options) transform.Transformer {
	return &transformer{t: t, opts: opts.resolved()}
}

type transformer struct {
	t      *Transliterator
	opts   Options
	buf    []byte // substituted output not yet handed to dst
	spaced bool
}

func (tr *transformer) Reset() {
	tr.buf = nil
	tr.spaced = false
}

func (tr *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nSrc = len(src)
	if !atEOF {
		nSrc = holdback(src, tr.opts.German)
	}
	if nSrc > 0 {
		chunk := string(src[:nSrc])
		if tr.opts.German {
			chunk = foldGermanDiaeresis(chunk)
		}
		tr.buf = append(tr.buf, tr.t.substitute(chunk, tr.opts)...)
	}
	if tr.opts.SmartSpacing && !tr.opts.DeferredSmartSpacing {
		if !atEOF {
			if nSrc < len(src) {
				return 0, nSrc, transform.ErrShortSrc
			}
			return 0, nSrc, nil
		}
		if !tr.spaced {
			tr.buf = []byte(ResolveSpacing(string(tr.buf)))
			tr.spaced = true
		}
	}
	nDst = copy(dst, tr.buf)
	tr.buf = tr.buf[nDst:]
	if len(tr.buf) > 0 {
		return nDst, nSrc, transform.ErrShortDst
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, nil
}

// holdback returns how much of src can be consumed before the end of input:
// a trailing incomplete rune stays, and in German mode a trailing umlaut
// base letter stays because the next input may begin with the combining
// diaeresis it folds with.
func holdback(src []byte, german bool) int {
	n := incompleteRuneCut(src)
	if german && n > 0 {
		if r, size := utf8.DecodeLastRune(src[:n]); umlautBase(r) {
			n -= size
		}
	}
	return n
}

// incompleteRuneCut is len(src) minus any trailing bytes forming an
// incomplete UTF-8 sequence.
func incompleteRuneCut(src []byte) int {
	n := len(src)
	for i := n - 1; i >= 0 && n-i <= utf8.UTFMax; i-- {
		if !utf8.RuneStart(src[i]) {
			continue
		}
		if !utf8.FullRune(src[i:n]) {
			return i
		}
		break
	}
	return n
}
