package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ScratchFile is a temporary on-disk copy of an upload. Its name is a random
// UUID that keeps the extension of the client-supplied filename, so two
// concurrent uploads of the same name never share a path.
type ScratchFile struct {
	path string
	once sync.Once
	err  error
}

// WriteScratchFile copies r into a new file under dir. The client filename
// only contributes its extension. On a failed write the partial file is removed.
func WriteScratchFile(dir, filename string, r io.Reader) (*ScratchFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+SafeExt(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}

	sf := &ScratchFile{path: path}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		sf.Remove()
		return nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		sf.Remove()
		return nil, fmt.Errorf("close scratch file: %w", err)
	}
	return sf, nil
}

// Path returns the absolute location of the scratch file
func (s *ScratchFile) Path() string {
	return s.path
}

// Remove deletes the file. It is safe to call more than once; a file that is
// already gone is not an error.
func (s *ScratchFile) Remove() error {
	s.once.Do(func() {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			s.err = err
		}
	})
	return s.err
}

// SafeExt returns the lowercased extension of a client filename, or "" when
// the extension contains anything other than letters and digits.
func SafeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
