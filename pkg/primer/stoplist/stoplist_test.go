package stoplist

import "testing"

func TestDefaultSets(t *testing.T) {
	l := Default()

	for _, w := range []string{"the", "and", "with", "between"} {
		if !l.IsStop(w) {
			t.Errorf("%q should be a stopword", w)
		}
	}
	for _, w := range []string{"system", "data", "approach"} {
		if !l.IsGeneric(w) {
			t.Errorf("%q should be a generic term", w)
		}
	}
	for _, w := range []string{"graph", "provenance", "algorithm"} {
		if l.IsFiltered(w) {
			t.Errorf("%q should not be filtered", w)
		}
	}
}

func TestIsFilteredCoversBothSets(t *testing.T) {
	l := Default()

	if !l.IsFiltered("the") {
		t.Error("Stopwords are filtered")
	}
	if !l.IsFiltered("system") {
		t.Error("Generic terms are filtered")
	}
}

func TestNewLowercasesMembers(t *testing.T) {
	l := New([]string{"Foo"}, []string{"BAR"})

	if !l.IsStop("foo") {
		t.Error("Stopword membership should be case-insensitive at load")
	}
	if !l.IsGeneric("bar") {
		t.Error("Generic membership should be case-insensitive at load")
	}
}

func TestCustomExtendsDefaults(t *testing.T) {
	l := Custom([]string{"plexus"}, []string{"widget"})

	if !l.IsStop("plexus") {
		t.Error("Custom stopword missing")
	}
	if !l.IsGeneric("widget") {
		t.Error("Custom generic term missing")
	}
	if !l.IsStop("the") {
		t.Error("Defaults must survive extension")
	}
}
