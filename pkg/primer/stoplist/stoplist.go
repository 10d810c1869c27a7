// Package stoplist provides the static stopword and generic-term sets used to
// filter low-information tokens throughout the extraction pipeline.
//
// Both sets are built once and never mutated afterwards, so a single List is
// safe for unrestricted concurrent reads across parallel extractions.
package stoplist

import "strings"

// defaultStops is a compact stopword set covering common English.
var defaultStops = strings.Fields(`
a about above after again against all am an and any are aren't as at be
because been before being below between both but by can't cannot could
couldn't did didn't do does doesn't doing don't down during each few for
from further get got had hadn't has hasn't have haven't having he he'd
he'll he's her here here's hers herself him himself his how how's i i'd
i'll i'm i've if in into is isn't it it's its itself let's me more most
mustn't my myself no nor not of off on once only or other ought our ours
ourselves out over own same shan't she she'd she'll she's should
shouldn't so some such than that that's the their theirs them themselves
then there there's these they they'd they'll they're they've this those
through to too under until up very was wasn't we we'd we'll we're we've
were weren't what what's when when's where where's which while who who's
whom why why's will with won't would wouldn't you you'd you'll you're
you've your yours yourself yourselves also just like even still well much
however although though since within without between another those being
been would could should might must shall may will can need using used use
one two three make made way many how new first also back only see now
well even get made going using used just like still take every much also
`)

// defaultGeneric lists terms common in technical writing that carry little
// meaning on their own and would otherwise dominate frequency signals.
var defaultGeneric = strings.Fields(`
data information system process approach method result example case
point question answer problem solution issue work thing part type form
kind sort area field level state point set number order way time
`)

// List holds a stopword set and a generic-term set. Membership is checked by
// exact lowercase match.
type List struct {
	stops   map[string]struct{}
	generic map[string]struct{}
}

// New creates a list from explicit stopword and generic-term slices.
func New(stops, generic []string) *List {
	l := &List{
		stops:   make(map[string]struct{}, len(stops)),
		generic: make(map[string]struct{}, len(generic)),
	}
	for _, w := range stops {
		l.stops[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range generic {
		l.generic[strings.ToLower(w)] = struct{}{}
	}
	return l
}

// Default returns a list built from the compiled-in sets.
func Default() *List {
	return New(defaultStops, defaultGeneric)
}

// Custom returns the default list extended with additional stopwords and
// generic terms. The extras are merged before first use, keeping the result
// read-only afterwards.
func Custom(extraStops, extraGeneric []string) *List {
	l := Default()
	for _, w := range extraStops {
		l.stops[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range extraGeneric {
		l.generic[strings.ToLower(w)] = struct{}{}
	}
	return l
}

// IsStop reports whether w is a stopword.
func (l *List) IsStop(w string) bool {
	_, ok := l.stops[w]
	return ok
}

// IsGeneric reports whether w is a generic term.
func (l *List) IsGeneric(w string) bool {
	_, ok := l.generic[w]
	return ok
}

// IsFiltered reports whether w belongs to either set. Tokens for which this
// holds are excluded from frequency scoring and graph construction.
func (l *List) IsFiltered(w string) bool {
	return l.IsStop(w) || l.IsGeneric(w)
}
