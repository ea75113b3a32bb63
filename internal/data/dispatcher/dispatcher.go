package dispatcher

import (
	"github.com/atomicstack/menubar/internal/backend"
	"github.com/atomicstack/menubar/internal/state"
)

type Result struct {
	FilesUpdated bool
}

type Dispatcher struct {
	files state.FileStore
}

func New(files state.FileStore) *Dispatcher {
	return &Dispatcher{files: files}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case backend.KindFiles:
		if snapshot, ok := evt.Data.([]backend.FileInfo); ok {
			entries := make([]state.FileEntry, len(snapshot))
			for i, file := range snapshot {
				entries[i] = state.FileEntry{
					Name:    file.Name,
					Path:    file.Path,
					ModTime: file.ModTime,
				}
			}
			d.files.SetEntries(entries)
			res.FilesUpdated = true
		}
	}
	return res
}
