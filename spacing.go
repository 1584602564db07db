package translit

import "strings"

// ResolveSpacing removes every sentinel byte from a substituted string and
// inserts single-space word boundaries where substitutions abut word
// characters. Substitutions next to punctuation or existing whitespace stay
// glued. The input is expected to be ASCII plus sentinels; strings without
// any 0x80/0x81 byte are returned unchanged, so the call is safe to repeat.
//
// The passes run in a fixed order; each pass consumes the previous pass's
// output.
func ResolveSpacing(s string) string {
	if !strings.ContainsAny(s, "\x80\x81") {
		return s
	}
	b := []byte(s)
	b = spaceEmDashes(b)
	b = dropDanglingBoundaries(b)
	b = collapseBoundaries(b)
	b = dropBoundaries(b)
	b = trimResolved(b)
	b = splitSpacedPairs(b)
	b = spaceResolved(b)
	return string(b)
}

// spaceEmDashes rewrites a word-flanked em-dash marker (0x80 "--" 0x80) into
// a spaced hyphen: "a - b". The trailing word character may flank the next
// marker in a chain of dashes.
func spaceEmDashes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if i+5 < len(b) && wordByte(b[i]) &&
			b[i+1] == boundary && b[i+2] == '-' && b[i+3] == '-' &&
			b[i+4] == boundary && wordByte(b[i+5]) {
			out = append(out, b[i], ' ', '-', ' ')
			i += 5
			continue
		}
		out = append(out, b[i])
		i++
	}
	return out
}

// dropDanglingBoundaries removes a 0x80 with nothing to attach to on its
// right: the next byte is neither a word character nor another boundary
// marker (adjacent markers are kept for collapseBoundaries).
func dropDanglingBoundaries(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == boundary {
			if i+1 >= len(b) || !(wordByte(b[i+1]) || b[i+1] == boundary) {
				continue
			}
		}
		out = append(out, b[i])
	}
	return out
}

// collapseBoundaries converts an empty double boundary (0x80 0x80, from
// adjacent substitutions) or a word character followed by 0x80 into the
// resolved marker 0x81, meaning "one space belongs here".
func collapseBoundaries(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if i+1 < len(b) && b[i] == boundary && b[i+1] == boundary {
			out = append(out, resolved)
			i += 2
			continue
		}
		if i+1 < len(b) && wordByte(b[i]) && b[i+1] == boundary {
			out = append(out, b[i], resolved)
			i += 2
			continue
		}
		out = append(out, b[i])
		i++
	}
	return out
}

func dropBoundaries(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != boundary {
			out = append(out, c)
		}
	}
	return out
}

// trimResolved strips resolved markers at the string edges; no space is owed
// before the first or after the last character.
func trimResolved(b []byte) []byte {
	lo := 0
	for lo < len(b) && b[lo] == resolved {
		lo++
	}
	hi := len(b)
	for hi > lo && b[hi-1] == resolved {
		hi--
	}
	return b[lo:hi]
}

// splitSpacedPairs rewrites 0x81 SP 0x81 into two literal spaces, keeping a
// pre-existing space between two substitutions out of the marker runs that
// spaceResolved collapses.
func splitSpacedPairs(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if i+2 < len(b) && b[i] == resolved && b[i+1] == ' ' && b[i+2] == resolved {
			out = append(out, ' ', ' ')
			i += 3
			continue
		}
		out = append(out, b[i])
		i++
	}
	return out
}

// spaceResolved collapses a run of whitespace followed by one or more
// resolved markers (or a bare marker run) into exactly one space.
func spaceResolved(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		j := i
		for j < len(b) && spaceByte(b[j]) {
			j++
		}
		k := j
		for k < len(b) && b[k] == resolved {
			k++
		}
		if k > j {
			out = append(out, ' ')
			i = k
			continue
		}
		if j > i {
			out = append(out, b[i:j]...)
			i = j
			continue
		}
		out = append(out, b[i])
		i++
	}
	return out
}

func spaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
