package allophone

import (
	"strings"
	"unicode"
)

// Resolve maps a phonetic label to a single fragment file name.
// Lookup order: sentinel labels, exact match in the numbered table, exact
// match in the unnumbered table, the same two lookups with stress digits
// stripped, then the closest-match heuristic over the original label.
// The second return value is false when nothing matches; callers drop
// such labels rather than treating them as errors.
func (c *Catalog) Resolve(label Label) (string, bool) {
	switch label {
	case LabelSpace:
		return FragmentSpace, true
	case LabelPeriod:
		return FragmentPeriod, true
	case LabelComma:
		return FragmentComma, true
	}

	if files, ok := lookup(c.numbered, label); ok {
		return files[0], true
	}
	if files, ok := lookup(c.unnumbered, label); ok {
		return files[0], true
	}

	if stripped := stripDigits(label); stripped != label {
		if files, ok := lookup(c.numbered, stripped); ok {
			return files[0], true
		}
		if files, ok := lookup(c.unnumbered, stripped); ok {
			return files[0], true
		}
	}

	// Fallback always runs on the original, un-stripped label.
	if files, ok := c.closestMatch(label); ok {
		return files[0], true
	}
	return "", false
}

func lookup(table []Entry, label Label) ([]string, bool) {
	for _, ent := range table {
		if ent.Label == label {
			return ent.Files, true
		}
	}
	return nil, false
}

// closestMatch is a crude nearest-label heuristic, kept deliberately: a
// single-character label matches its doubled form ("Z" -> "ZZ"), a longer
// label matches the first table entry sharing its first character ("D"
// would hit "DD" before "DH" ever gets considered). The numbered table is
// scanned before the unnumbered one, each in declaration order.
func (c *Catalog) closestMatch(label Label) ([]string, bool) {
	for _, table := range [2][]Entry{c.numbered, c.unnumbered} {
		for _, ent := range table {
			switch {
			case len(label) == 1:
				if ent.Label == label+label {
					return ent.Files, true
				}
			case len(label) > 1:
				if ent.Label[0] == label[0] {
					return ent.Files, true
				}
			}
		}
	}
	return nil, false
}

func stripDigits(label Label) Label {
	var b strings.Builder
	for _, r := range label {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return Label(b.String())
}
