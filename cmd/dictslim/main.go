// Command dictslim trims a full CMU Pronouncing Dictionary down to the
// words that actually occur in the given corpus files, so a small
// dictionary can ship alongside the fragment recordings.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ieee0824/speak-go/lexicon"
	"github.com/ieee0824/speak-go/tokenizer"
)

func main() {
	corpusGlob := flag.String("corpus", "", "glob pattern for corpus files (e.g. 'texts/*.txt')")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: dictslim -corpus GLOB <cmudict.dict>")
		fmt.Fprintln(os.Stderr, "  Keeps only dictionary entries for words found in the corpus files.")
		fmt.Fprintln(os.Stderr, "  Output goes to stdout in CMU dictionary format.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 || *corpusGlob == "" {
		flag.Usage()
		os.Exit(1)
	}

	dict, err := lexicon.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	files, err := filepath.Glob(*corpusGlob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad pattern %q: %v\n", *corpusGlob, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no files match %q\n", *corpusGlob)
		os.Exit(1)
	}

	keep := make(map[string]bool)
	for _, path := range files {
		if err := collectWords(path, keep); err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	words := make([]string, 0, len(keep))
	for w := range keep {
		if len(dict.Lookup(w)) > 0 {
			words = append(words, w)
		}
	}
	sort.Strings(words)

	var kept, missing int
	for _, w := range words {
		for i, entry := range dict.Lookup(w) {
			name := strings.ToUpper(w)
			if i > 0 {
				name = fmt.Sprintf("%s(%d)", name, i)
			}
			labels := make([]string, len(entry.Labels))
			for j, l := range entry.Labels {
				labels[j] = string(l)
			}
			fmt.Printf("%s  %s\n", name, strings.Join(labels, " "))
		}
		kept++
	}
	missing = len(keep) - kept

	fmt.Fprintf(os.Stderr, "kept %d words, %d corpus words not in dictionary\n", kept, missing)
}

// collectWords adds every lowercased word token of the file to keep.
func collectWords(path string, keep map[string]bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		for _, tok := range tokenizer.Split(strings.ToLower(scanner.Text())) {
			if tokenizer.IsWord(tok) {
				keep[tok] = true
			}
		}
	}
	return scanner.Err()
}
