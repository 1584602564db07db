package translit

// Range is an inclusive span of scalar values.
type Range struct {
	Low, High rune
}

// Options configures a single transliteration call. The zero value selects
// all defaults.
//
// DeferredSmartSpacing implies SmartSpacing but suppresses the automatic
// resolve pass, leaving the sentinel bytes in the returned string so that a
// caller may concatenate several outputs and run ResolveSpacing once.
//
// SkipRanges lists scalar ranges to pass through untouched, re-emitting the
// original character. Ranges are checked in the order given; the first range
// containing a scalar wins, even when a later range also contains it.
type Options struct {
	German               bool
	SmartSpacing         bool
	DeferredSmartSpacing bool
	SkipRanges           []Range
}

// resolved normalizes option interdependencies once per call.
func (o Options) resolved() Options {
	if o.DeferredSmartSpacing {
		o.SmartSpacing = true
	}
	return o
}

func (o Options) skipped(r rune) bool {
	for _, sr := range o.SkipRanges {
		if r >= sr.Low && r <= sr.High {
			return true
		}
	}
	return false
}
