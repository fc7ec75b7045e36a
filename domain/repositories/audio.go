package repositories

import "context"

// AudioNormalizer converts arbitrary audio files into the PCM WAV layout
// expected by recognition services
type AudioNormalizer interface {
	// Normalize decodes inputPath and writes a normalized WAV file to outputPath
	Normalize(ctx context.Context, inputPath, outputPath string) error
	// SampleRate reports the sample rate of the first audio stream in path
	SampleRate(ctx context.Context, path string) (int, error)
}
