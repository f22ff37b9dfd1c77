package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"

	"github.com/ted-editor/tools/internal/errs"
	"github.com/ted-editor/tools/internal/logging"
)

// FileMode is the mode used for created files
const FileMode = 0644

// DirMode is the mode used for created dirs
const DirMode = os.ModePerm

// FileExists checks if the given file (not folder) exists
func FileExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsRegular()
}

// DirExists checks if the given directory exists
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}

	mode := fi.Mode()
	return mode.IsDir()
}

// Hash returns the xxhash digest of the given data
func Hash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// HashFile returns the xxhash digest of the file at path
func HashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errs.Wrap(err, "Could not open %s", path)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, errs.Wrap(err, "Could not read %s", path)
	}
	return h.Sum64(), nil
}

// MkdirUnlessExists will make the directory structure if it doesn't already exists
func MkdirUnlessExists(path string) error {
	if DirExists(path) {
		return nil
	}
	if err := os.MkdirAll(path, DirMode); err != nil {
		return errs.Wrap(err, "Could not create directory %s", path)
	}
	return nil
}

// ReadFile reads the content of a file
func ReadFile(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errs.Wrap(err, "Could not read %s", filePath)
	}
	return b, nil
}

// WriteFile writes data to a file, if it exists it is overwritten, if it doesn't exist it is created and data is written
func WriteFile(filePath string, data []byte) error {
	if err := MkdirUnlessExists(filepath.Dir(filePath)); err != nil {
		return err
	}

	// make the target file temporarily writable
	fileExists := FileExists(filePath)
	if fileExists {
		stat, err := os.Stat(filePath)
		if err != nil {
			return errs.Wrap(err, "Could not stat %s", filePath)
		}
		if stat.Mode().Perm()&0200 == 0 {
			logging.Warning("%s is read-only, overwriting it anyway", filePath)
		}
		if err := os.Chmod(filePath, FileMode); err != nil {
			return errs.Wrap(err, "Could not make %s writable", filePath)
		}
		defer os.Chmod(filePath, stat.Mode().Perm())
	}

	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		if !fileExists {
			err = fmt.Errorf("access to target %q is denied: %w", filepath.Dir(filePath), err)
		}
		return errs.Wrap(err, "Could not open %s for writing", filePath)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errs.Wrap(err, "Could not write %s", filePath)
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(err, "Could not close %s", filePath)
	}
	return nil
}

// WriteFileIfChanged writes data to filePath unless the file already holds exactly that data.
// Leaving an up to date file alone keeps its modification time, so build tools don't rebuild its dependents.
func WriteFileIfChanged(filePath string, data []byte) (bool, error) {
	if fi, err := os.Stat(filePath); err == nil && fi.Mode().IsRegular() && fi.Size() == int64(len(data)) {
		sum, err := HashFile(filePath)
		if err != nil {
			return false, err
		}
		if sum == Hash(data) {
			logging.Debug("%s is up to date, not rewriting", filePath)
			return false, nil
		}
	}

	if err := WriteFile(filePath, data); err != nil {
		return false, err
	}
	return true, nil
}
