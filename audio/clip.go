// Package audio reads allophone fragment WAV files and assembles them
// into a single output waveform.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Fragments are mono 16-bit PCM; anything else is rejected up front.
var (
	ErrNotMono       = errors.New("only mono WAV files are supported")
	ErrNot16Bit      = errors.New("only 16-bit PCM WAV files are supported")
	ErrInvalidWAV    = errors.New("not a valid WAV file")
	ErrEmptySequence = errors.New("no fragments to assemble")

	// ErrSampleRateMismatch aborts assembly as soon as a fragment's rate
	// differs from the first fragment's.
	ErrSampleRateMismatch = errors.New("all fragments must share one sample rate")
)

// Clip holds the decoded samples of one audio fragment.
type Clip struct {
	Samples    []int
	SampleRate int
}

// Duration returns the clip length in samples.
func (c Clip) Duration() int { return len(c.Samples) }

// ReadWAV decodes a mono 16-bit PCM WAV stream.
func ReadWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("decode PCM data: %w", err)
	}

	if buf.Format.NumChannels != 1 {
		return Clip{}, fmt.Errorf("%w (got %d channels)", ErrNotMono, buf.Format.NumChannels)
	}
	if buf.SourceBitDepth != 16 {
		return Clip{}, fmt.Errorf("%w (got %d bits)", ErrNot16Bit, buf.SourceBitDepth)
	}

	return Clip{
		Samples:    buf.Data,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// ReadWAVFile is a convenience wrapper that opens a file path.
func ReadWAVFile(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, err
	}
	defer f.Close()

	clip, err := ReadWAV(f)
	if err != nil {
		return Clip{}, fmt.Errorf("%s: %w", path, err)
	}
	return clip, nil
}

// WriteWAVFile writes a clip as a mono 16-bit PCM WAV file.
func WriteWAVFile(path string, clip Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, clip.SampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Data:           clip.Samples,
		Format:         &gaudio.Format{SampleRate: clip.SampleRate, NumChannels: 1},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalize %s: %w", path, err)
	}
	return f.Close()
}
