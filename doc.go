/*
Package translit maps arbitrary Unicode text onto printable US-ASCII.

Every scalar value outside 0x00–0x7F is replaced by a substitution string
looked up in a 256-entry page addressed by the scalar's high byte. Pages are
provided by an external table store and cached lazily for the lifetime of a
Transliterator. Multi-character substitutions optionally get "smart spacing":
the substitutor brackets them with transient sentinel bytes and a second pass
rewrites the sentinels into natural single-space word boundaries.

The engine never reports an error. A missing or unreadable page degrades to a
page of underscore placeholders, unmappable astral characters become "_", and
bytes that do not decode as a scalar value are dropped.

Transliteration is a fixed table lookup, not a pronunciation model. Callers
who need context-sensitive output have to post-process.

Further Reading

	https://en.wikipedia.org/wiki/Transliteration
	https://metacpan.org/pod/Text::Unidecode   (ancestor of most table sets)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit'
func tracer() tracing.Trace {
	return tracing.Select("translit")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
