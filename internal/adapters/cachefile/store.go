// Package cachefile implements the expiring semester-data cache as one
// JSON file per key.
package cachefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/itzMRZ/usisportal/internal/core/domain"
)

// entry is the persisted cache record layout: the payload plus an
// absolute expiry in epoch milliseconds.
type entry struct {
	Data   []domain.Course `json:"data"`
	Expiry int64           `json:"expiry"`
}

// Store implements ports.CacheStore using a file-per-key strategy under
// a single cache directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a cache store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Save stores courses under key with the given time-to-live.
func (s *Store) Save(key string, courses []domain.Course, ttl time.Duration) error {
	record := entry{
		Data:   courses,
		Expiry: s.now().Add(ttl).UnixMilli(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}

	if err := s.atomicWriteFile(s.filename(key), data); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	return nil
}

// Get retrieves the courses stored under key. A missing, corrupt or
// expired entry reads as nil, nil; corrupt and expired files are
// evicted so the next read is cheap.
func (s *Store) Get(key string) ([]domain.Course, error) {
	filename := s.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrCacheReadFailed.Error())
	}

	var record entry
	if err := json.Unmarshal(data, &record); err != nil {
		_ = os.Remove(filename)
		return nil, nil
	}

	if s.now().UnixMilli() > record.Expiry {
		_ = os.Remove(filename)
		return nil, nil
	}

	return record.Data, nil
}

func (s *Store) filename(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(key)))
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "cache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
