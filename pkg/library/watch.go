package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/kasuboski/vfp/pkg/logger"
)

const defaultSettle = 500 * time.Millisecond

// Watcher reports video files as they are added to a library directory.
// A file is reported once it has stopped changing for the settle duration.
type Watcher struct {
	root    string
	lib     MediaLibrary
	settle  time.Duration
	watcher *fsnotify.Watcher

	mu       sync.Mutex
	pending  map[string]*time.Timer
	inflight sync.WaitGroup
}

// NewWatcher watches root and every directory below it. Options are the same as for New.
func NewWatcher(root string, opts ...Option) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		root:    filepath.Clean(root),
		lib:     New(os.DirFS(root), opts...),
		settle:  defaultSettle,
		watcher: w,
		pending: make(map[string]*time.Timer),
	}, nil
}

// Run blocks until ctx is done calling onFile for each settled video file.
// onFile is called from a single goroutine at a time.
func (w *Watcher) Run(ctx context.Context, onFile func(ParsedFile)) error {
	log := logger.FromCtx(ctx)
	// timers that already fired are waiting on ctx to give up their send
	ctx, cancel := context.WithCancel(ctx)
	defer w.inflight.Wait()
	defer cancel()
	defer w.watcher.Close()
	defer w.stopPending()

	if err := w.addDir(ctx, w.root, nil); err != nil {
		return err
	}

	settled := make(chan string)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ctx, event, settled)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("watch error", "error", err)
		case p := <-settled:
			if pf, ok := w.parsed(p); ok {
				onFile(pf)
			}
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event, settled chan<- string) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}
	if info.IsDir() {
		if event.Has(fsnotify.Create) {
			// a directory moved in already has its files
			w.addDir(ctx, event.Name, func(p string) {
				w.schedule(ctx, p, settled)
			})
		}
		return
	}
	w.schedule(ctx, event.Name, settled)
}

// schedule reports name on settled once it has not changed for the settle duration
func (w *Watcher) schedule(ctx context.Context, name string, settled chan<- string) {
	if !w.lib.isVideoFile(name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[name]; ok && t.Stop() {
		w.inflight.Done()
	}
	w.inflight.Add(1)
	w.pending[name] = time.AfterFunc(w.settle, func() {
		defer w.inflight.Done()
		w.mu.Lock()
		delete(w.pending, name)
		w.mu.Unlock()

		select {
		case settled <- name:
		case <-ctx.Done():
		}
	})
}

func (w *Watcher) parsed(p string) (ParsedFile, bool) {
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return ParsedFile{}, false
	}

	rel, err := filepath.Rel(w.root, p)
	if err != nil {
		rel = p
	}

	return ParsedFile{
		Path:      filepath.ToSlash(rel),
		Size:      info.Size(),
		SizeHuman: humanize.IBytes(uint64(info.Size())),
		Metadata:  w.lib.parse(filepath.Base(p)),
	}, true
}

// addDir watches dir and every directory below it, passing any other files to found
func (w *Watcher) addDir(ctx context.Context, dir string, found func(string)) error {
	log := logger.FromCtx(ctx)
	return filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			log.Warnw("failed to access path", "path", p, "error", err)
			return nil
		}
		if !d.IsDir() {
			if found != nil {
				found(p)
			}
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			log.Errorw("failed to add watch", "path", p, "error", err)
			return nil
		}
		log.Debugw("added watch", "path", p)
		return nil
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for p, t := range w.pending {
		if t.Stop() {
			w.inflight.Done()
		}
		delete(w.pending, p)
	}
}
