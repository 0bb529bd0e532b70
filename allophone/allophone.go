// Package allophone maps phonetic labels to pre-recorded fragment files.
//
// The catalog covers the GI SP0256-AL2 allophone set: a handful of labels
// have several recorded variants (numbered files), the rest exactly one.
// Table order matters — the closest-match fallback returns the first
// matching entry in declaration order.
package allophone

// Label is a short phonetic code, optionally carrying a trailing stress
// digit as produced by the CMU Pronouncing Dictionary (e.g. "AY1").
type Label string

// Sentinel labels substituted for whitespace and punctuation in the
// label stream.
const (
	LabelSpace  Label = "SPACE"
	LabelPeriod Label = "PERIOD"
	LabelComma  Label = "COMMA"
)

// Fragment files backing the sentinel labels. These resolve regardless
// of catalog contents.
const (
	FragmentSpace  = "SPACE.wav"
	FragmentPeriod = "PERIOD.wav"
	FragmentComma  = "COMMA.wav"
)

// Entry pairs a catalog label with its recorded fragment files, in
// recording order. Only the first file is ever selected; there are no
// language rules for choosing among aspirated/unaspirated variants.
type Entry struct {
	Label Label
	Files []string
}

// Catalog holds the two fixed label tables. It is read-only after
// construction.
type Catalog struct {
	numbered   []Entry // labels with multiple recorded variants
	unnumbered []Entry // labels with a single recording
}

// NewCatalog builds a catalog from explicit tables, preserving their order.
func NewCatalog(numbered, unnumbered []Entry) *Catalog {
	return &Catalog{numbered: numbered, unnumbered: unnumbered}
}

// e is a shorthand to build a catalog entry.
func e(label Label, files ...string) Entry { return Entry{Label: label, Files: files} }

// defaultNumbered lists the allophones with multiple recorded variants.
var defaultNumbered = []Entry{
	e("BB", "BB1.wav", "BB2.wav"),
	e("DD", "DD1.wav", "DD2.wav"),
	e("DH", "DH1.wav", "DH2.wav"),
	e("ER", "ER1.wav", "ER2.wav"),
	e("GG", "GG2.wav", "GG3.wav"),
	e("HH", "HH1.wav", "HH2.wav"),
	e("KK", "KK1.wav", "KK2.wav", "KK3.wav"),
	e("NN", "NN1.wav", "NN2.wav"),
	e("RR", "RR1.wav", "RR2.wav"),
	e("TT", "TT1.wav", "TT2.wav"),
	e("UW", "UW1.wav", "UW2.wav"),
	e("YY", "YY1.wav", "YY2.wav"),
}

// defaultUnnumbered lists the allophones with a single recording.
var defaultUnnumbered = []Entry{
	e("AA", "AA.wav"),
	e("AE", "AE.wav"),
	e("AO", "AO.wav"),
	e("AR", "AR.wav"),
	e("AW", "AW.wav"),
	e("AX", "AX.wav"),
	e("AY", "AY.wav"),
	e("CH", "CH.wav"),
	e("EH", "EH.wav"),
	e("EL", "EL.wav"),
	e("EY", "EY.wav"),
	e("FF", "FF.wav"),
	e("GOT", "GOT.wav"),
	e("IH", "IH.wav"),
	e("IY", "IY.wav"),
	e("JH", "JH.wav"),
	e("LL", "LL.wav"),
	e("MM", "MM.wav"),
	e("NG", "NG.wav"),
	e("OR", "OR.wav"),
	e("OW", "OW.wav"),
	e("OY", "OY.wav"),
	e("PP", "PP.wav"),
	e("SH", "SH.wav"),
	e("SS", "SS.wav"),
	e("TH", "TH.wav"),
	e("UH", "UH.wav"),
	e("VV", "VV.wav"),
	e("WH", "WH.wav"),
	e("WW", "WW.wav"),
	e("XR", "XR.wav"),
	e("YR", "YR.wav"),
	e("ZH", "ZH.wav"),
	e("ZZ", "ZZ.wav"),
}

var defaultCatalog = NewCatalog(defaultNumbered, defaultUnnumbered)

// Default returns the built-in SP0256-AL2 catalog.
func Default() *Catalog { return defaultCatalog }

// Numbered returns the multi-variant table in declaration order.
func (c *Catalog) Numbered() []Entry { return c.numbered }

// Unnumbered returns the single-variant table in declaration order.
func (c *Catalog) Unnumbered() []Entry { return c.unnumbered }
