package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Upload is an audio blob waiting to be transcribed. Size is the size the
// client declared and is checked before anything is read.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// NewMultipartUpload wraps a bound form file
func NewMultipartUpload(fh *multipart.FileHeader) Upload {
	return Upload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// NewFileUpload wraps a local file, used by the command line
func NewFileUpload(path string) (Upload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Upload{}, err
	}
	return Upload{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}
