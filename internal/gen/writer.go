package gen

import (
	"bytes"
	"io/fs"
	"os"

	"sealgen/internal/errors"
	"sealgen/internal/logger"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return errors.Wrapf(err, "creating directory %s", file.Dir)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return errors.Wrapf(err, "writing file %s", file.Filename)
		}

		logger.Logger.Debugw("wrote generated file", "file", file.Path(), "bytes", len(file.Content))
	}

	return nil
}

// Stale returns the paths whose content on disk differs from the generated
// content, including files that do not exist yet.
func Stale(files []GeneratedFile) ([]string, error) {
	var stale []string

	for _, file := range files {
		current, err := os.ReadFile(file.Path())
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, file.Path())
			continue
		}

		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file.Path())
		}

		if !bytes.Equal(current, file.Content) {
			stale = append(stale, file.Path())
		}
	}

	return stale, nil
}
