package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Local stores episodes on the local file system.
type Local struct{}

var _ Storage = (*Local)(nil)

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrap(err, "failed to check whether episode exists")
}

func (l *Local) Place(_ context.Context, tempPath string, path string) error {
	var (
		logger = log.WithField("path", path)
		dir    = filepath.Dir(path)
	)

	logger.Debugf("creating directory: %s", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory: %s", dir)
	}

	err := os.Rename(tempPath, path)
	if err == nil {
		return nil
	}

	// Temp dir is often on another device (tmpfs), fall back to copy
	if !errors.Is(err, syscall.EXDEV) {
		return errors.Wrap(err, "failed to move file")
	}

	logger.Debugf("rename failed (%v), copying from %s", err, tempPath)
	written, err := l.copyFile(tempPath, path)
	if err != nil {
		os.Remove(path)
		return errors.Wrap(err, "failed to copy file")
	}

	logger.Debugf("copied %d bytes", written)
	return os.Remove(tempPath)
}

func (l *Local) Delete(_ context.Context, path string) error {
	return os.Remove(path)
}

func (l *Local) copyFile(sourcePath string, destinationPath string) (int64, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open source file")
	}

	defer source.Close()

	dest, err := os.Create(destinationPath)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create destination file")
	}

	written, err := io.Copy(dest, source)
	if err != nil {
		dest.Close()
		return 0, errors.Wrap(err, "failed to copy data")
	}

	return written, dest.Close()
}
