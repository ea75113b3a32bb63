package state

import "time"

// FileEntry describes one file from the watched directory.
type FileEntry struct {
	Name    string
	Path    string
	ModTime time.Time
}

type FileStore interface {
	Entries() []FileEntry
	SetEntries([]FileEntry)
	Dir() string
	SetDir(string)
}

type fileStore struct {
	entries []FileEntry
	dir     string
}

func NewFileStore() FileStore {
	return &fileStore{}
}

func (s *fileStore) Entries() []FileEntry {
	return cloneFileEntries(s.entries)
}

func (s *fileStore) SetEntries(entries []FileEntry) {
	s.entries = cloneFileEntries(entries)
}

func (s *fileStore) Dir() string {
	return s.dir
}

func (s *fileStore) SetDir(dir string) {
	s.dir = dir
}

func cloneFileEntries(entries []FileEntry) []FileEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]FileEntry, len(entries))
	copy(dup, entries)
	return dup
}
