// Package upload stages multipart files on local disk for the duration of
// one request.
package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	ErrMissingFile = errors.New("no file uploaded")
	ErrTooLarge    = errors.New("uploaded file is too large")
)

// FormOverhead is the room left above maxBytes for multipart boundaries,
// part headers and small form fields.
const FormOverhead = 1 << 20

// TempFile is a staged upload. Remove deletes it exactly once no matter how
// many exit paths call it.
type TempFile struct {
	Path         string
	OriginalName string
	Size         int64

	once   sync.Once
	logger *zap.Logger
}

// Receive copies form field `field` into a fresh temp file under dir.
// Callers must `defer tmp.Remove()` as soon as err is nil. With maxBytes
// set, the request body is capped before the multipart form is parsed.
func Receive(c *gin.Context, field, dir string, maxBytes int64) (*TempFile, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+FormOverhead)
	}
	header, err := c.FormFile(field)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, ErrTooLarge
		}
		return nil, ErrMissingFile
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, ErrTooLarge
	}
	return Stage(header, dir)
}

// Stage writes header's content into dir with a unique name.
func Stage(header *multipart.FileHeader, dir string) (*TempFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.CreateTemp(dir, "upload-*"+ext)
	if err != nil {
		return nil, err
	}

	tmp := &TempFile{
		Path:         dst.Name(),
		OriginalName: filepath.Base(header.Filename),
		logger:       zap.L().Named("upload"),
	}

	n, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		tmp.Remove()
		return nil, err
	}
	tmp.Size = n
	return tmp, nil
}

func (t *TempFile) Open() (*os.File, error) {
	return os.Open(t.Path)
}

func (t *TempFile) Remove() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		if err := os.Remove(t.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.logger.Warn("remove temp upload failed", zap.String("path", t.Path), zap.Error(err))
		}
	})
}
