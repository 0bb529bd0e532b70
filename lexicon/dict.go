// Package lexicon loads word pronunciations from a CMU Pronouncing
// Dictionary file.
package lexicon

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ieee0824/speak-go/allophone"
)

// Entry represents a single pronunciation for a word.
type Entry struct {
	Word   string
	Labels []allophone.Label // phonetic label sequence, stress markers included
}

// Dictionary holds word-to-pronunciation mappings. Words are stored
// case-folded; alternative pronunciations keep their file order.
type Dictionary struct {
	Entries map[string][]Entry
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Entries: make(map[string][]Entry),
	}
}

// Add adds a pronunciation entry to the dictionary.
func (d *Dictionary) Add(word string, labels []allophone.Label) {
	word = strings.ToLower(word)
	d.Entries[word] = append(d.Entries[word], Entry{
		Word:   word,
		Labels: labels,
	})
}

// Load reads a dictionary in CMU Pronouncing Dictionary format:
//
//	;;; comment
//	HELLO  HH AH0 L OW1
//	HELLO(1)  HH EH0 L OW1
//
// The "(n)" suffix marks alternative pronunciations; they are kept in
// file order under the same word.
func Load(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		word := fields[0]
		if i := strings.IndexByte(word, '('); i > 0 {
			word = word[:i] // HELLO(1) -> HELLO
		}

		labels := make([]allophone.Label, len(fields)-1)
		for i, f := range fields[1:] {
			labels[i] = allophone.Label(f)
		}

		d.Add(word, labels)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns all pronunciation variants for a word (case-folded).
func (d *Dictionary) Lookup(word string) []Entry {
	return d.Entries[strings.ToLower(word)]
}

// LabelSequence returns the label sequence for a word, using the first
// pronunciation when several exist.
func (d *Dictionary) LabelSequence(word string) ([]allophone.Label, bool) {
	entries := d.Entries[strings.ToLower(word)]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0].Labels, true
}

// Words returns all words in the dictionary.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.Entries))
	for w := range d.Entries {
		words = append(words, w)
	}
	return words
}
