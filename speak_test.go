package speak

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieee0824/speak-go/allophone"
	"github.com/ieee0824/speak-go/audio"
	"github.com/ieee0824/speak-go/lexicon"
)

const testDict = `;;; test dictionary
HI  HH AY1
HELLO  HH AH0 L OW1
THERE  DH EH1 R
`

func testSynthesizer(t *testing.T, dir string, opts ...Option) *Synthesizer {
	t.Helper()
	dict, err := lexicon.Load(strings.NewReader(testDict))
	require.NoError(t, err)
	return NewSynthesizerFromModels(dict, audio.NewDirStore(dir), opts...)
}

func writeFragment(t *testing.T, dir, name string, sampleRate, n int) []int {
	t.Helper()
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(12000 * math.Sin(2*math.Pi*220*float64(i)/float64(sampleRate)))
	}
	clip := audio.Clip{Samples: samples, SampleRate: sampleRate}
	require.NoError(t, audio.WriteWAVFile(filepath.Join(dir, name), clip))
	return samples
}

func TestSynthesizeHi(t *testing.T) {
	dir := t.TempDir()
	hh := writeFragment(t, dir, "HH1.wav", 11025, 60)
	ay := writeFragment(t, dir, "AY.wav", 11025, 90)

	s := testSynthesizer(t, dir)
	out := filepath.Join(dir, "output.wav")

	result, err := s.Synthesize("hi.", out)
	require.NoError(t, err)

	// Period sentinel dropped by the default config.
	assert.Equal(t, []string{"HH1.wav", "AY.wav"}, result.Fragments)
	assert.Equal(t, "hi.", result.Input)
	assert.Equal(t, []allophone.Label{"HH", "AY1"}, result.Words["hi"])
	assert.Equal(t, out, result.OutputFile)

	clip, err := audio.ReadWAVFile(out)
	require.NoError(t, err)
	assert.Equal(t, 11025, clip.SampleRate)
	assert.Equal(t, append(append([]int{}, hh...), ay...), clip.Samples)
}

func TestSynthesizeKeepsPunctuation(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "HH1.wav", 11025, 60)
	writeFragment(t, dir, "AY.wav", 11025, 90)
	writeFragment(t, dir, "PERIOD.wav", 11025, 40)

	s := testSynthesizer(t, dir, WithConfig(Config{
		IgnoreSpaces:  true,
		IgnorePeriods: false,
		IgnoreCommas:  true,
	}))

	result, err := s.Synthesize("hi.", filepath.Join(dir, "output.wav"))
	require.NoError(t, err)
	assert.Equal(t, []string{"HH1.wav", "AY.wav", "PERIOD.wav"}, result.Fragments)
}

func TestSynthesizeMixedCase(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "HH1.wav", 11025, 60)
	writeFragment(t, dir, "AY.wav", 11025, 90)

	s := testSynthesizer(t, dir)

	result, err := s.Synthesize("Hi.", filepath.Join(dir, "output.wav"))
	require.NoError(t, err)
	assert.Equal(t, []string{"HH1.wav", "AY.wav"}, result.Fragments)
}

func TestSynthesizeUnknownWordDropped(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "HH1.wav", 11025, 60)
	writeFragment(t, dir, "AY.wav", 11025, 90)

	s := testSynthesizer(t, dir)

	// "qqqq" is not in the dictionary and matches no catalog rule, so it
	// contributes zero fragments.
	result, err := s.Synthesize("hi qqqq", filepath.Join(dir, "output.wav"))
	require.NoError(t, err)
	assert.Equal(t, []string{"HH1.wav", "AY.wav"}, result.Fragments)
}

func TestSynthesizeNothingResolves(t *testing.T) {
	dir := t.TempDir()
	s := testSynthesizer(t, dir)

	_, err := s.Synthesize("qqqq", filepath.Join(dir, "output.wav"))
	assert.ErrorIs(t, err, audio.ErrEmptySequence)
}

func TestSynthesizeSampleRateMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "HH1.wav", 11025, 60)
	writeFragment(t, dir, "AY.wav", 22050, 90)

	s := testSynthesizer(t, dir)

	_, err := s.Synthesize("hi", filepath.Join(dir, "output.wav"))
	assert.ErrorIs(t, err, audio.ErrSampleRateMismatch)
}

func TestPhonetize(t *testing.T) {
	s := testSynthesizer(t, t.TempDir())

	words := s.Phonetize("Hello there, stranger.")
	assert.Equal(t, []allophone.Label{"HH", "AH0", "L", "OW1"}, words["hello"])
	assert.Equal(t, []allophone.Label{"DH", "EH1", "R"}, words["there"])
	// Unknown words map to themselves as an opaque label.
	assert.Equal(t, []allophone.Label{"stranger"}, words["stranger"])
}
