package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the burst of events an editor save produces.
const debounceInterval = 200 * time.Millisecond

// inputExtensions are the file types that can change generated output.
var inputExtensions = []string{".cue", ".yaml", ".yml"}

// inputWatcher reports changes to the schema and configuration inputs of a
// generate run. Directories are watched rather than files so that editors
// replacing a file on save are still seen.
type inputWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	dirs    []string
	files   []string

	changes chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// newInputWatcher watches paths. A directory path matches every input file
// directly inside it; a file path matches only that file.
func newInputWatcher(logger *slog.Logger, paths ...string) (*inputWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	iw := &inputWatcher{
		watcher: w,
		logger:  logger,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, err
		}
		dir := abs
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			dir = filepath.Dir(abs)
			iw.files = append(iw.files, abs)
		} else {
			iw.dirs = append(iw.dirs, abs)
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	iw.wg.Add(1)
	go iw.processEvents()
	return iw, nil
}

// Changes receives one value per debounced burst of relevant events.
func (iw *inputWatcher) Changes() <-chan struct{} { return iw.changes }

// Close stops watching and waits for the event loop to exit.
func (iw *inputWatcher) Close() error {
	close(iw.done)
	err := iw.watcher.Close()
	iw.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (iw *inputWatcher) processEvents() {
	defer iw.wg.Done()

	var pending <-chan time.Time
	for {
		select {
		case <-iw.done:
			return

		case event, ok := <-iw.watcher.Events:
			if !ok {
				return
			}
			if iw.relevant(event) {
				iw.logger.Debug("input changed", "path", event.Name, "op", event.Op.String())
				pending = time.After(debounceInterval)
			}

		case <-pending:
			pending = nil
			select {
			case iw.changes <- struct{}{}:
			default:
			}

		case err, ok := <-iw.watcher.Errors:
			if !ok {
				return
			}
			iw.logger.Warn("watch error", "error", err)
		}
	}
}

// relevant reports whether event touches a watched input.
func (iw *inputWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if slices.Contains(iw.files, abs) {
		return true
	}
	if !slices.Contains(inputExtensions, filepath.Ext(abs)) {
		return false
	}
	return slices.Contains(iw.dirs, filepath.Dir(abs))
}

// watchLoop calls run once per input change until ctx is done.
func watchLoop(ctx context.Context, iw *inputWatcher, run func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-iw.Changes():
			run()
		}
	}
}
