package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"go.uber.org/zap"
)

// TargetSampleRate is the sample rate whisper models expect
const TargetSampleRate = 16000

// FFmpegBinary is the converter used by ConvertTo16kHzWav
var FFmpegBinary = "ffmpeg"

// Is16kHzWavFile reports whether the file is a 16 kHz, 16-bit PCM WAV that
// can be fed to the model without conversion.
func Is16kHzWavFile(filePath string) (bool, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return false, nil
	}
	return dec.WavAudioFormat == 1 && dec.SampleRate == TargetSampleRate && dec.BitDepth == 16, nil
}

// GetAudioDuration returns the length of a WAV file
func GetAudioDuration(filePath string) (time.Duration, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("not a valid wav file: %s", filePath)
	}
	return dec.Duration()
}

// ConvertTo16kHzWav writes a 16 kHz mono PCM copy of inputFilePath into outDir
// and returns its path. The caller owns outDir.
func ConvertTo16kHzWav(ctx context.Context, inputFilePath, outDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(inputFilePath), filepath.Ext(inputFilePath))
	outputFilePath := filepath.Join(outDir, base+"_16khz.wav")

	cmd := exec.CommandContext(ctx, FFmpegBinary,
		"-nostdin", "-y",
		"-i", inputFilePath,
		"-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1",
		outputFilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg error: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	zap.L().Debug("Converted audio to 16kHz WAV",
		zap.String("input", inputFilePath),
		zap.String("output", outputFilePath))
	return outputFilePath, nil
}
