package audio

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewFFmpegNormalizer_Defaults(t *testing.T) {
	n := NewFFmpegNormalizer(FFmpegConfig{}, zaptest.NewLogger(t))

	if n.ffmpegPath != "ffmpeg" {
		t.Errorf("Expected ffmpeg path 'ffmpeg', got '%s'", n.ffmpegPath)
	}
	if n.ffprobePath != "ffprobe" {
		t.Errorf("Expected ffprobe path 'ffprobe', got '%s'", n.ffprobePath)
	}
	if n.sampleRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", n.sampleRate)
	}
	if n.channels != 1 {
		t.Errorf("Expected 1 channel, got %d", n.channels)
	}
}

func TestFFmpegNormalizer_NormalizeArgs(t *testing.T) {
	n := NewFFmpegNormalizer(FFmpegConfig{}, zaptest.NewLogger(t))
	args := strings.Join(n.normalizeArgs("in.m4a", "converted.wav"), " ")

	for _, want := range []string{"-y", "-i in.m4a", "-ar 16000", "-ac 1", "-c:a pcm_s16le", "-f wav"} {
		if !strings.Contains(args, want) {
			t.Errorf("Expected args to contain %q, got %q", want, args)
		}
	}

	if !strings.HasSuffix(args, "converted.wav") {
		t.Errorf("Expected output path last, got %q", args)
	}
}

func TestParseSampleRate(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "16000\n", want: 16000},
		{in: "  44100  ", want: 44100},
		{in: "48000\n22050\n", want: 48000},
		{in: "", wantErr: true},
		{in: "N/A\n", wantErr: true},
		{in: "0", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseSampleRate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSampleRate(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSampleRate(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseSampleRate(%q): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestFFmpegNormalizer_MissingBinary(t *testing.T) {
	n := NewFFmpegNormalizer(FFmpegConfig{
		FFmpegPath:  "/nonexistent/ffmpeg",
		FFprobePath: "/nonexistent/ffprobe",
	}, zaptest.NewLogger(t))

	dir := t.TempDir()
	err := n.Normalize(context.Background(), filepath.Join(dir, "in.mp3"), filepath.Join(dir, "out.wav"))
	if err == nil {
		t.Fatal("Expected error when ffmpeg binary is missing")
	}
	if !strings.Contains(err.Error(), "ffmpeg conversion failed") {
		t.Errorf("Unexpected error message: %v", err)
	}

	if _, err := n.SampleRate(context.Background(), filepath.Join(dir, "out.wav")); err == nil {
		t.Error("Expected error when ffprobe binary is missing")
	}
}

// Integration test - only runs when ffmpeg and ffprobe are installed
func TestFFmpegNormalizer_Integration(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("Skipping integration test - ffmpeg not found on PATH")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("Skipping integration test - ffprobe not found on PATH")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "input_tone.wav")
	output := filepath.Join(dir, "converted.wav")

	// half a second of a 440 Hz stereo tone at 44.1 kHz
	const rate, channels = 44100, 2
	pcm := make([]byte, 0, rate/2*channels*2)
	for i := 0; i < rate/2; i++ {
		sample := int16(8000 * math.Sin(2*math.Pi*440*float64(i)/rate))
		for c := 0; c < channels; c++ {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(sample))
		}
	}
	if err := os.WriteFile(input, EncodeWAV(pcm, rate, channels, 16), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	n := NewFFmpegNormalizer(FFmpegConfig{}, zaptest.NewLogger(t))
	ctx := context.Background()

	if err := n.Normalize(ctx, input, output); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	gotRate, err := n.SampleRate(ctx, output)
	if err != nil {
		t.Fatalf("SampleRate failed: %v", err)
	}
	if gotRate != 16000 {
		t.Errorf("Expected sample rate 16000, got %d", gotRate)
	}

	header, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if got := binary.LittleEndian.Uint16(header[22:24]); got != 1 {
		t.Errorf("Expected mono output, got %d channels", got)
	}
	if got := binary.LittleEndian.Uint16(header[34:36]); got != 16 {
		t.Errorf("Expected 16-bit output, got %d bits", got)
	}

	// running again overwrites the same artifact
	if err := n.Normalize(ctx, input, output); err != nil {
		t.Fatalf("Second Normalize failed: %v", err)
	}
}

// Integration test - only runs when ffmpeg is installed
func TestFFmpegNormalizer_UndecodableInput(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("Skipping integration test - ffmpeg not found on PATH")
	}

	dir := t.TempDir()
	input := filepath.Join(dir, "input_notes.txt")
	if err := os.WriteFile(input, []byte("definitely not audio"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	n := NewFFmpegNormalizer(FFmpegConfig{}, zaptest.NewLogger(t))
	if err := n.Normalize(context.Background(), input, filepath.Join(dir, "converted.wav")); err == nil {
		t.Error("Expected error for undecodable input")
	}
}
