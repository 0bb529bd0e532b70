// Package speak converts text into a speech waveform by concatenating
// pre-recorded allophone fragments, in the manner of the GI SP0256-AL2
// speech chip.
package speak

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ieee0824/speak-go/allophone"
	"github.com/ieee0824/speak-go/audio"
	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/tokenizer"
)

// Config controls which punctuation fragments are suppressed from the
// assembled output.
type Config struct {
	IgnoreSpaces  bool
	IgnorePeriods bool
	IgnoreCommas  bool
}

// DefaultConfig suppresses all punctuation fragments.
func DefaultConfig() Config {
	return Config{
		IgnoreSpaces:  true,
		IgnorePeriods: true,
		IgnoreCommas:  true,
	}
}

// Synthesizer is the top-level text-to-speech pipeline.
type Synthesizer struct {
	Dict    *lexicon.Dictionary
	Catalog *allophone.Catalog
	Store   audio.Store
	Cfg     Config
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithConfig sets the punctuation suppression flags.
func WithConfig(cfg Config) Option {
	return func(s *Synthesizer) {
		s.Cfg = cfg
	}
}

// WithCatalog replaces the built-in allophone catalog.
func WithCatalog(c *allophone.Catalog) Option {
	return func(s *Synthesizer) {
		s.Catalog = c
	}
}

// WithStore replaces the fragment source.
func WithStore(store audio.Store) Option {
	return func(s *Synthesizer) {
		s.Store = store
	}
}

// NewSynthesizer creates a Synthesizer from a CMU-format dictionary file
// and a directory of fragment WAV files.
func NewSynthesizer(dictPath, fragmentDir string, opts ...Option) (*Synthesizer, error) {
	dict, err := lexicon.LoadFile(dictPath)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}

	s := &Synthesizer{
		Dict:    dict,
		Catalog: allophone.Default(),
		Store:   audio.NewDirStore(fragmentDir),
		Cfg:     DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewSynthesizerFromModels creates a Synthesizer from a pre-loaded
// dictionary and fragment store.
func NewSynthesizerFromModels(dict *lexicon.Dictionary, store audio.Store, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		Dict:    dict,
		Catalog: allophone.Default(),
		Store:   store,
		Cfg:     DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result holds everything a caller may want to report about one run.
type Result struct {
	Input      string
	Words      map[string][]allophone.Label // word -> label sequence used
	Fragments  []string                     // fragment files actually assembled
	OutputFile string
}

// Synthesize runs the full pipeline on text and writes the waveform to
// outPath.
func (s *Synthesizer) Synthesize(text, outPath string) (*Result, error) {
	tokens := tokenizer.Split(text)
	words := s.Phonetize(text)
	labels := expand(tokens, words)
	slog.Debug("expanded labels", "count", len(labels))

	fragments := make([]string, 0, len(labels))
	for _, label := range labels {
		if frag, ok := s.Catalog.Resolve(label); ok {
			fragments = append(fragments, frag)
		}
		// Unresolvable labels are dropped, not errors.
	}

	fragments = s.Cfg.filter(fragments)
	slog.Debug("resolved fragments", "count", len(fragments))

	out, err := audio.Assemble(s.Store, fragments, outPath)
	if err != nil {
		return nil, err
	}

	return &Result{
		Input:      text,
		Words:      words,
		Fragments:  fragments,
		OutputFile: out,
	}, nil
}

// Phonetize maps each distinct word of text (case-folded) to its label
// sequence. Words missing from the dictionary map to themselves as a
// single opaque label; these virtually never resolve and fall out of the
// pipeline silently.
func (s *Synthesizer) Phonetize(text string) map[string][]allophone.Label {
	words := make(map[string][]allophone.Label)
	for _, tok := range tokenizer.Split(strings.ToLower(text)) {
		if !tokenizer.IsWord(tok) {
			continue
		}
		if _, seen := words[tok]; seen {
			continue
		}
		if labels, ok := s.Dict.LabelSequence(tok); ok {
			words[tok] = labels
		} else {
			words[tok] = []allophone.Label{allophone.Label(tok)}
		}
	}
	return words
}

// expand walks the token stream substituting word tokens with their label
// sequences and space/period/comma with sentinel labels. All other
// punctuation disappears here.
func expand(tokens []string, words map[string][]allophone.Label) []allophone.Label {
	var labels []allophone.Label
	for _, tok := range tokens {
		if labelSeq, ok := words[strings.ToLower(tok)]; ok {
			labels = append(labels, labelSeq...)
			continue
		}
		switch tok {
		case " ":
			labels = append(labels, allophone.LabelSpace)
		case ".":
			labels = append(labels, allophone.LabelPeriod)
		case ",":
			labels = append(labels, allophone.LabelComma)
		}
	}
	return labels
}

// filter removes suppressed punctuation fragments. It operates on
// fragment files after resolution, not on labels.
func (cfg Config) filter(fragments []string) []string {
	drop := map[string]bool{
		allophone.FragmentSpace:  cfg.IgnoreSpaces,
		allophone.FragmentPeriod: cfg.IgnorePeriods,
		allophone.FragmentComma:  cfg.IgnoreCommas,
	}
	kept := fragments[:0]
	for _, f := range fragments {
		if !drop[f] {
			kept = append(kept, f)
		}
	}
	return kept
}
