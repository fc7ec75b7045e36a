package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/lingua/server/domain/repositories"
)

const (
	defaultFFmpegPath  = "ffmpeg"
	defaultFFprobePath = "ffprobe"
	defaultSampleRate  = 16000 // Hz, what the recognizer is configured for
	defaultChannels    = 1
	defaultCodec       = "pcm_s16le"

	// keep error payloads readable, ffmpeg prints a banner before the real failure
	maxStderrBytes = 1024
)

// FFmpegConfig holds configuration for the ffmpeg based normalizer.
// Zero values fall back to 16 kHz mono signed 16-bit PCM using binaries on PATH.
type FFmpegConfig struct {
	FFmpegPath  string
	FFprobePath string
	SampleRate  int
	Channels    int
}

// FFmpegNormalizer implements AudioNormalizer by shelling out to ffmpeg and ffprobe
type FFmpegNormalizer struct {
	ffmpegPath  string
	ffprobePath string
	sampleRate  int
	channels    int
	logger      *zap.Logger
}

var _ repositories.AudioNormalizer = (*FFmpegNormalizer)(nil)

// NewFFmpegNormalizer creates a normalizer, applying defaults for empty fields
func NewFFmpegNormalizer(config FFmpegConfig, logger *zap.Logger) *FFmpegNormalizer {
	n := &FFmpegNormalizer{
		ffmpegPath:  config.FFmpegPath,
		ffprobePath: config.FFprobePath,
		sampleRate:  config.SampleRate,
		channels:    config.Channels,
		logger:      logger,
	}

	if n.ffmpegPath == "" {
		n.ffmpegPath = defaultFFmpegPath
	}
	if n.ffprobePath == "" {
		n.ffprobePath = defaultFFprobePath
	}
	if n.sampleRate <= 0 {
		n.sampleRate = defaultSampleRate
	}
	if n.channels <= 0 {
		n.channels = defaultChannels
	}

	return n
}

// Normalize converts inputPath into a 16-bit PCM WAV at outputPath, overwriting it
func (n *FFmpegNormalizer) Normalize(ctx context.Context, inputPath, outputPath string) error {
	args := n.normalizeArgs(inputPath, outputPath)

	n.logger.Debug("Normalizing audio",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Strings("args", args))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, n.ffmpegPath, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w: %s", err, tail(stderr.String()))
	}

	return nil
}

// SampleRate asks ffprobe for the sample rate of the first audio stream
func (n *FFmpegNormalizer) SampleRate(ctx context.Context, path string) (int, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, n.ffprobePath, probeArgs(path)...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w: %s", err, tail(stderr.String()))
	}

	return parseSampleRate(string(out))
}

func (n *FFmpegNormalizer) normalizeArgs(inputPath, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", inputPath,
		"-ar", strconv.Itoa(n.sampleRate),
		"-ac", strconv.Itoa(n.channels),
		"-c:a", defaultCodec,
		"-f", "wav",
		outputPath,
	}
}

func probeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=sample_rate",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
}

func parseSampleRate(out string) (int, error) {
	value := strings.TrimSpace(out)
	if i := strings.IndexByte(value, '\n'); i >= 0 {
		value = strings.TrimSpace(value[:i])
	}
	if value == "" {
		return 0, fmt.Errorf("no audio stream found")
	}

	rate, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid sample rate %q: %w", value, err)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid sample rate %d", rate)
	}

	return rate, nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrBytes {
		s = s[len(s)-maxStderrBytes:]
	}
	return s
}
