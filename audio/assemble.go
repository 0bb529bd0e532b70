package audio

import "fmt"

// Assemble reads each fragment in order, concatenates their samples with
// no gaps, and writes one WAV file at outPath. Every fragment must share
// the first fragment's sample rate; the first mismatch aborts the whole
// run before anything is written. Returns outPath on success.
func Assemble(store Store, fragments []string, outPath string) (string, error) {
	if len(fragments) == 0 {
		return "", ErrEmptySequence
	}

	var combined []int
	sampleRate := 0

	for _, name := range fragments {
		clip, err := store.Clip(name)
		if err != nil {
			return "", fmt.Errorf("read fragment %s: %w", name, err)
		}

		if sampleRate == 0 {
			sampleRate = clip.SampleRate
		} else if clip.SampleRate != sampleRate {
			return "", fmt.Errorf("fragment %s has rate %d, expected %d: %w",
				name, clip.SampleRate, sampleRate, ErrSampleRateMismatch)
		}

		combined = append(combined, clip.Samples...)
	}

	out := Clip{Samples: combined, SampleRate: sampleRate}
	if err := WriteWAVFile(outPath, out); err != nil {
		return "", err
	}
	return outPath, nil
}
