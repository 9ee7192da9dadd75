package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch re-converts source files as they change, until ctx is cancelled.
// Unlike Run, a failing conversion is logged and does not stop the watcher:
// a long-running mode gets per-event isolation.
func (p *Pipeline) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(p.cfg.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", p.cfg.SourceDir, err)
	}

	p.logger.Info("watching for changes", "source", p.cfg.SourceDir, "basis", "."+p.basis())

	suffix := "." + p.basis()
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				// New subdirectories join the watch set.
				if event.Has(fsnotify.Create) {
					if err := watcher.Add(event.Name); err != nil {
						p.logger.Warn("watch subdirectory", "path", event.Name, "error", err)
					}
				}
				continue
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), suffix) {
				continue
			}
			rel, err := filepath.Rel(p.cfg.SourceDir, event.Name)
			if err != nil {
				continue
			}
			if err := p.Convert(rel); err != nil {
				p.logger.Error("conversion failed", "file", rel, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("watch error", "error", err)
		}
	}
}
