package fs

import (
	"context"
	"path/filepath"
)

// Storage is where tagged episodes end up.
type Storage interface {
	// Exists reports whether a file is already present at path
	Exists(ctx context.Context, path string) (bool, error)

	// Place moves a finished temp file to its final location, creating directories as needed
	Place(ctx context.Context, tempPath string, path string) error

	// Delete deletes the file
	Delete(ctx context.Context, path string) error
}

// EpisodePath returns where an episode named fileName is stored within dir.
func EpisodePath(dir string, fileName string, ext string, oneFolderPerEpisode bool) string {
	if oneFolderPerEpisode {
		dir = filepath.Join(dir, fileName)
	}

	return filepath.Join(dir, fileName+"."+ext)
}
