package services

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"lsaudio/websocket"
)

// watchJobID tags library change events on the WebSocket stream.
const watchJobID = "library"

// Watcher observes a library root and queues a rescan when files change.
// Change bursts are debounced so one copy of an album triggers one scan.
type Watcher struct {
	fs       *fsnotify.Watcher
	queue    ScanQueue
	hub      websocket.Hub
	root     string
	debounce time.Duration
	done     chan struct{}
}

// NewWatcher creates a watcher over root. All existing subdirectories are
// watched as well; directories created later are added as they appear.
func NewWatcher(root string, queue ScanQueue, hub websocket.Hub) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fs:       fs,
		queue:    queue,
		hub:      hub,
		root:     root,
		debounce: 2 * time.Second,
		done:     make(chan struct{}),
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fs.Add(path)
		}
		return nil
	})
	if err != nil {
		fs.Close()
		return nil, err
	}

	return w, nil
}

// Run processes filesystem events until Close is called.
func (w *Watcher) Run() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := w.fs.Add(event.Name); err != nil {
						log.Warn("cannot watch new directory", "path", event.Name, "err", err)
					}
				}
			}

			if w.hub != nil {
				w.hub.BroadcastEvent(watchJobID, "library", event.Op.String(), event.Name, "", 0)
			}

			if timer == nil {
				timer = time.AfterFunc(w.debounce, w.rescan)
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) rescan() {
	job := w.queue.Enqueue(w.root, true)
	log.Info("library changed, rescan queued", "job", job.ID, "path", w.root)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
