// Package specwatcher watches kernelspec directories for changes and emits
// coalesced change notifications. It does not enumerate candidates itself;
// consumers re-run discovery and ranking when a notification arrives.
package specwatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKey       = "watcher"
	_defaultDebounce = 250 * time.Millisecond
)

// Config is the watcher configuration block.
type Config struct {
	// Directories are the kernelspec directories to watch. Missing
	// directories are skipped with a warning.
	Directories []string `yaml:"directories"`
	// DebounceMs is how long to coalesce successive events for one path,
	// in milliseconds.
	DebounceMs int `yaml:"debounceMs"`
}

func (c Config) debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return _defaultDebounce
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// ChangeEvent reports that a watched kernelspec path changed.
type ChangeEvent struct {
	Path string
}

// Watcher publishes kernelspec directory changes.
type Watcher interface {
	// Subscribe registers a notification channel. Events are dropped when
	// the subscriber is not ready; the signal carries no backlog. The
	// returned cancel func removes the subscription and closes the
	// channel; it is safe to call more than once.
	Subscribe() (<-chan ChangeEvent, func())
}

// Params are inbound parameters to initialize the watcher.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Config    config.Provider
}

type watcher struct {
	cfg     Config
	fsw     *fsnotify.Watcher
	logger  *zap.SugaredLogger
	closer  chan bool
	stopped chan struct{}

	mu             sync.Mutex
	nextSubID      int
	subscribers    map[int]chan ChangeEvent
	debounceTimers map[string]*time.Timer
}

// New creates a Watcher whose lifetime is bound to the fx lifecycle.
func New(p Params) (Watcher, error) {
	cfg := Config{}
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", _configKey, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create kernelspec watcher: %w", err)
	}

	w := &watcher{
		cfg:            cfg,
		fsw:            fsw,
		logger:         p.Logger.With("component", "specwatcher"),
		closer:         make(chan bool, 1),
		stopped:        make(chan struct{}),
		subscribers:    make(map[int]chan ChangeEvent),
		debounceTimers: make(map[string]*time.Timer),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return w.start()
		},
		OnStop: func(ctx context.Context) error {
			w.closer <- true
			select {
			case <-w.stopped:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		},
	})
	return w, nil
}

func (w *watcher) Subscribe() (<-chan ChangeEvent, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextSubID
	w.nextSubID++
	ch := make(chan ChangeEvent, 1)
	w.subscribers[id] = ch

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subscribers[id]; ok {
			delete(w.subscribers, id)
			close(sub)
		}
	}
}

func (w *watcher) start() error {
	for _, dir := range w.cfg.Directories {
		if err := w.fsw.Add(dir); err != nil {
			w.logger.Warnw("skipping unwatchable kernelspec directory", "dir", dir, "error", err)
		}
	}
	go w.handleChanges()
	return nil
}

func (w *watcher) handleChanges() {
	defer close(w.stopped)
	for {
		select {
		case event := <-w.fsw.Events:
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.handleDebounce(event)

		case err := <-w.fsw.Errors:
			w.logger.Warnf("failure in kernelspec watcher: %v", err)

		case <-w.closer:
			w.mu.Lock()
			for _, timer := range w.debounceTimers {
				timer.Stop()
			}
			w.debounceTimers = make(map[string]*time.Timer)
			for id, sub := range w.subscribers {
				delete(w.subscribers, id)
				close(sub)
			}
			w.mu.Unlock()

			if err := w.fsw.Close(); err != nil {
				w.logger.Warnf("failed to close kernelspec watcher: %v", err)
			}
			return
		}
	}
}

// handleDebounce coalesces bursts of events for the same path into one
// notification.
func (w *watcher) handleDebounce(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.debounceTimers[event.Name]; exists {
		timer.Stop()
	}
	w.debounceTimers[event.Name] = time.AfterFunc(w.cfg.debounce(), func() {
		// Sends happen under the lock so a cancelled subscription can
		// never receive after its channel is closed.
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.debounceTimers, event.Name)

		for _, ch := range w.subscribers {
			select {
			case ch <- ChangeEvent{Path: event.Name}:
			default:
			}
		}
	})
}
