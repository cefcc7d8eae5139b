package render

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DefaultDocument is the dashboard page rewritten when no path is configured
const DefaultDocument = "index.html"

// lockDocument takes an exclusive advisory lock next to the document so two
// runs against the same page serialize their read-modify-write.
func lockDocument(path string) (*flock.Flock, error) {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, &DocumentError{Op: "lock", Path: path, Cause: err}
	}
	return lock, nil
}

// unlockDocument releases the lock taken by lockDocument
func unlockDocument(lock *flock.Flock, path string) error {
	if err := lock.Unlock(); err != nil {
		return &DocumentError{Op: "unlock", Path: path, Cause: err}
	}
	return nil
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &DocumentError{Op: "read", Path: path, Cause: err}
	}
	return string(data), nil
}

// writeDocument replaces the document atomically: the content is written to a
// temp file in the same directory and renamed over the original.
func writeDocument(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &DocumentError{Op: "write", Path: path, Cause: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return &DocumentError{Op: "write", Path: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &DocumentError{Op: "write", Path: path, Cause: err}
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return &DocumentError{Op: "write", Path: path, Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &DocumentError{Op: "write", Path: path, Cause: err}
	}
	return nil
}
