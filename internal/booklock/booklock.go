// Package booklock serializes work on a book across bookloom processes.
package booklock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"bookloom/internal/services"
)

// FileName is the lock file created inside each book directory.
const FileName = ".bookloom.lock"

// Lock is a held advisory lock on a book directory.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes a non-blocking exclusive lock on bookDir. A lock held by
// another process yields an error marked services.ErrBusy.
func Acquire(bookDir string) (*Lock, error) {
	path := filepath.Join(bookDir, FileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "booklock", "acquire", fmt.Sprintf("lock %s", path), err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrBusy, "booklock", "acquire", fmt.Sprintf("another bookloom process is working on %s", bookDir), nil)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Release unlocks the book. The lock file is left in place.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release %s: %w", l.path, err)
	}
	return nil
}
