package dataset

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// defaultSequence is the sample data served when no override file is set.
var defaultSequence = []int{1, 2, 3, 4, 5}

// Dataset holds the current sample sequence. When an override file is
// configured it is hot-reloaded on change; handlers only ever see snapshot
// copies and never touch the disk themselves.
type Dataset struct {
	mu      sync.RWMutex
	seq     []int
	path    string
	watcher *fsnotify.Watcher
}

// Fixed returns a dataset serving the built-in sequence.
func Fixed() *Dataset {
	return &Dataset{seq: append([]int(nil), defaultSequence...)}
}

// Open loads the override file at path and watches its directory for
// changes. The directory is watched rather than the file so editors that
// replace the file on save keep triggering reloads.
func Open(path string) (*Dataset, error) {
	d := &Dataset{
		seq:  append([]int(nil), defaultSequence...),
		path: path,
	}

	if err := d.load(); err != nil {
		log.Printf("dataset: %v, keeping built-in sequence", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return d, fmt.Errorf("dataset watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return d, fmt.Errorf("dataset watcher: %w", err)
	}
	d.watcher = watcher

	go d.watch()
	return d, nil
}

// Sequence returns a copy of the current sample sequence.
func (d *Dataset) Sequence() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]int(nil), d.seq...)
}

func (d *Dataset) Close() error {
	if d.watcher == nil {
		return nil
	}
	return d.watcher.Close()
}

func (d *Dataset) load() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", d.path, err)
	}

	var seq []int
	if err := json.Unmarshal(data, &seq); err != nil {
		return fmt.Errorf("parse %s: %w", d.path, err)
	}
	if len(seq) == 0 {
		return fmt.Errorf("parse %s: empty sequence", d.path)
	}

	d.mu.Lock()
	d.seq = seq
	d.mu.Unlock()
	return nil
}

func (d *Dataset) watch() {
	for {
		select {
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(d.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if err := d.load(); err != nil {
				log.Printf("dataset: reload failed: %v, keeping previous sequence", err)
				continue
			}
			log.Printf("dataset: reloaded %s (%d samples)", d.path, len(d.Sequence()))
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("dataset: watch error: %v", err)
		}
	}
}
