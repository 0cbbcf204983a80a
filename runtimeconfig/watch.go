package runtimeconfig

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/projecteru2/core/log"

	"github.com/cocoonstack/hvconf/arch"
)

// debounceDelay coalesces fsnotify event bursts (editors fire several
// events per save) into one regeneration.
const debounceDelay = 500 * time.Millisecond

// Watch regenerates all architectures whenever a fragment changes.
// Blocks until ctx is cancelled.
func (g *Generator) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(g.conf.FragmentDir); err != nil {
		return fmt.Errorf("watch %s: %w", g.conf.FragmentDir, err)
	}

	logger := log.WithFunc("runtimeconfig.watch")
	logger.Infof(ctx, "watching %s", g.conf.FragmentDir)

	// Generate once up front so the outputs match the current fragments
	// even if nothing changes while watching.
	if _, err := g.GenerateAll(ctx, arch.Supported()); err != nil {
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !strings.HasSuffix(event.Name, ".toml") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debugf(ctx, "fragment event: %s", event)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
				timerC = timer.C
			} else {
				timer.Reset(debounceDelay)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if _, err := g.GenerateAll(ctx, arch.Supported()); err != nil {
				// Keep watching: a half-written fragment fails to
				// parse, then the final save fixes it.
				logger.Errorf(ctx, err, "regeneration failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			logger.Errorf(ctx, err, "watcher error")
		}
	}
}
