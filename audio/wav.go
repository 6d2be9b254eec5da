package audio

import (
	"fmt"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ReadWAV decodes a PCM WAV file, mixing all channels down to mono.
func ReadWAV(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid WAV file", path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	chans := buf.Format.NumChannels
	if chans < 1 {
		chans = 1
	}
	scale := math.Exp2(float64(buf.SourceBitDepth) - 1)
	if buf.SourceBitDepth == 0 {
		scale = math.Exp2(float64(d.BitDepth) - 1)
	}
	out := make([]float32, len(buf.Data)/chans)
	for i := range out {
		sum := 0
		for c := 0; c < chans; c++ {
			sum += buf.Data[i*chans+c]
		}
		out[i] = float32(float64(sum) / float64(chans) / scale)
	}
	return out, buf.Format.SampleRate, nil
}

// WriteWAV encodes mono samples as 16 bit PCM, clipping to [-1, 1].
func WriteWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, x := range samples {
		buf.Data[i] = int(math.Round(float64(max(-1, min(1, x))) * 32767))
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}
