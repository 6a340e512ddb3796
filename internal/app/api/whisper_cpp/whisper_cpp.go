package whisper_cpp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"transcript-cleaner/internal/app/audio"
	"transcript-cleaner/internal/app/util/files"
)

// whisper.cpp emits no segments for input shorter than this
const minInputDuration = 100 * time.Millisecond

// LocalConfig holds whisper.cpp CLI settings
type LocalConfig struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Prompt     string
	Threads    int
}

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	config LocalConfig
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(config LocalConfig) *LocalTranscriber {
	if config.Language == "" {
		config.Language = "auto"
	}
	return &LocalTranscriber{config: config}
}

// Load verifies that the binary and the model file are present
func (lt *LocalTranscriber) Load(ctx context.Context) error {
	info, err := os.Stat(lt.config.BinaryPath)
	if err != nil {
		return fmt.Errorf("whisper.cpp binary: %w", err)
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return fmt.Errorf("whisper.cpp binary is not executable: %s", lt.config.BinaryPath)
	}
	if _, err := os.Stat(lt.config.ModelPath); err != nil {
		return fmt.Errorf("whisper.cpp model: %w", err)
	}
	return nil
}

// Transcript runs whisper.cpp on the input file and returns the text. Files
// that are not 16kHz WAV are converted first. All intermediate files live in
// a private directory that is removed before returning.
func (lt *LocalTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	logger := zap.L().With(zap.String("input", inputFilePath))

	workDir, err := os.MkdirTemp("", "whisper-cpp-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error checking input file: %w", err)
	}

	if !is16kHzWav {
		logger.Debug("Input file is not a 16kHz WAV file, converting")
		inputFilePath, err = audio.ConvertTo16kHzWav(ctx, inputFilePath, workDir)
		if err != nil {
			return "", fmt.Errorf("error converting input file: %w", err)
		}
	}

	duration, err := audio.GetAudioDuration(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error reading audio duration: %w", err)
	}
	if duration < minInputDuration {
		logger.Debug("Input shorter than whisper.cpp minimum, returning empty transcript",
			zap.Duration("duration", duration))
		return "", nil
	}

	outputBase := filepath.Join(workDir, "transcript")
	args := lt.buildArgs(inputFilePath, outputBase)

	command := exec.CommandContext(ctx, lt.config.BinaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	logger.Debug("Running transcription command",
		zap.String("binary", lt.config.BinaryPath),
		zap.Strings("args", args),
		zap.Duration("audio_duration", duration))

	start := time.Now()
	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	output, err := files.ReadOutputFile(outputBase + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %w", err)
	}

	logger.Debug("whisper.cpp finished",
		zap.Duration("audio_duration", duration),
		zap.Duration("elapsed", time.Since(start)))
	return output, nil
}

func (lt *LocalTranscriber) buildArgs(inputFilePath, outputBase string) []string {
	args := []string{
		"-m", lt.config.ModelPath,
		"-l", lt.config.Language,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputBase,
	}
	if lt.config.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(lt.config.Threads))
	}
	if lt.config.Prompt != "" {
		args = append(args, "--prompt", lt.config.Prompt)
	}
	return args
}
