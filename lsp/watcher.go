package lsp

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the workspace root and rescans pattern documents that
// were added, modified or removed on disk.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange is called after a document was rescanned or dropped.
	OnChange func(path string)
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: 1 * time.Second,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *FileWatcher) Start() {
	go w.run()
}

func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) run() {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Extension {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			if err := w.workspace.ScanFile(path); err == nil {
				w.changed(path)
			}
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			w.changed(path)
		}
	}
}

func (w *FileWatcher) changed(path string) {
	if w.OnChange != nil {
		w.OnChange(path)
	}
}
