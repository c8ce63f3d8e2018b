package encoder

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/linuxmatters/scentcloud/internal/config"
	"github.com/linuxmatters/scentcloud/internal/errors"
)

// Config holds the encoder configuration
type Config struct {
	Quality int // JPEG quality, 1-100
}

// Encoder writes rendered clouds to disk as JPEG
type Encoder struct {
	config Config
}

// New creates a new encoder instance. A zero quality selects the default.
func New(cfg Config) (*Encoder, error) {
	if cfg.Quality == 0 {
		cfg.Quality = config.JPEGQuality
	}
	if cfg.Quality < 1 || cfg.Quality > 100 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid JPEG quality: %d", cfg.Quality)
	}
	return &Encoder{config: cfg}, nil
}

// Quality returns the JPEG quality used for encoding
func (e *Encoder) Quality() int {
	return e.config.Quality
}

// Write encodes img as JPEG to path, creating or replacing the file. The
// destination directory must already exist. The image is written to a
// temporary file beside path and renamed into place, so a failed write
// leaves any existing file untouched.
func (e *Encoder) Write(img image.Image, path string) (err error) {
	if path == "" {
		return errors.New(errors.ErrCodeWriteFailure, "output path cannot be empty")
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "output directory %s", dir)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeWriteFailure, "output directory %s is not a directory", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "creating %s", path)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(e.config.Quality)); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "encoding %s", path)
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "closing %s", path)
	}
	if err = os.Chmod(tmpPath, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "setting permissions on %s", path)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailure, err, "replacing %s", path)
	}
	return nil
}
