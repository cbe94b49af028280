package tagger

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

const id3v1Size = 128

// StripID3v1 removes a trailing ID3v1 block from the file, if there is one.
func StripID3v1(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "failed to open audio file")
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "failed to stat audio file")
	}

	if stat.Size() < id3v1Size {
		return nil
	}

	trailer := make([]byte, 3)
	if _, err := f.ReadAt(trailer, stat.Size()-id3v1Size); err != nil {
		return errors.Wrap(err, "failed to read ID3v1 trailer")
	}

	if !bytes.Equal(trailer, []byte("TAG")) {
		return nil
	}

	if err := f.Truncate(stat.Size() - id3v1Size); err != nil {
		return errors.Wrap(err, "failed to remove ID3v1 tag")
	}

	return nil
}
