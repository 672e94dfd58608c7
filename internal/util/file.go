package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tts-generator/internal/logger"
)

// AudioSuffix is the extension of every audio file this program writes.
const AudioSuffix = ".wav"

// filenameWords is how many leading words of the text name a saved file.
const filenameWords = 2

// GenerateFilename names a saved file after the first words of the text,
// e.g. "Speech_Hello_world.wav", or "Speech_output.wav" for blank text.
func GenerateFilename(text string) string {
	words := strings.Fields(text)
	if len(words) > filenameWords {
		words = words[:filenameWords]
	}
	parts := []string{"Speech"}
	for _, w := range words {
		parts = append(parts, SanitizeFilenameWord(w))
	}
	if len(words) == 0 {
		parts = append(parts, "output")
	}
	return strings.Join(parts, "_") + AudioSuffix
}

// WriteTempAudio writes data to a new uniquely named file in dir (the system
// temp dir when empty) and returns its path. A partially written file is
// removed before the error is returned.
func WriteTempAudio(dir, prefix string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, prefix+"*"+AudioSuffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp audio file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write audio to %s: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}

// RemoveTempFile deletes the file at path. Empty or missing paths are a
// no-op, and deletion errors are only logged.
func RemoveTempFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log := logger.For("cleanup")
		log.Debug().Err(err).Str("path", path).Msg("failed to remove temp file")
	}
}

// CopyFile copies the file at src to w. It backs the download action.
func CopyFile(w io.Writer, src string) (int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return n, nil
}

// SaveAudioFile copies the audio file at src to dst, replacing dst.
func SaveAudioFile(src, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := CopyFile(out, src); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to save file to %s: %w", dst, err)
	}
	return nil
}
