package audio

import "path/filepath"

// Store is a read-only source of named audio fragments.
type Store interface {
	Clip(name string) (Clip, error)
}

// DirStore reads fragments from a directory, one WAV file per fragment
// name.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Clip reads the named fragment file.
func (s *DirStore) Clip(name string) (Clip, error) {
	return ReadWAVFile(filepath.Join(s.dir, name))
}
