// Package hwback watches a Linux input device for the system back key.
//
// Handheld firmwares deliver the back key on a raw evdev node that SDL does
// not always see. The listener reads that node on its own goroutine and only
// counts presses; the UI loop drains the count once per frame, so all
// onboarding state is still mutated from the loop goroutine.
package hwback

import (
	"log/slog"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Source is the part of an evdev device the listener needs.
type Source interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// Listener counts back key presses read from a Source.
type Listener struct {
	source  Source
	logger  *slog.Logger
	pending *atomic.Int32
	running *atomic.Bool
	wg      sync.WaitGroup
}

// Open opens the evdev node at path and wraps it in a Listener.
func Open(path string, logger *slog.Logger) (*Listener, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return New(dev, logger), nil
}

// New wraps an already open Source.
func New(source Source, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Listener{
		source:  source,
		logger:  logger,
		pending: atomic.NewInt32(0),
		running: atomic.NewBool(false),
	}
}

// IsBackKey reports whether an event is a back key press. Repeats and
// releases are ignored.
func IsBackKey(ev *evdev.InputEvent) bool {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return false
	}
	return ev.Code == evdev.KEY_BACK || ev.Code == evdev.KEY_ESC
}

// Start begins reading on a background goroutine. Calling Start on a
// running listener does nothing.
func (l *Listener) Start() {
	if l.running.Swap(true) {
		return
	}

	l.wg.Add(1)
	go l.read()
}

func (l *Listener) read() {
	defer l.wg.Done()

	for l.running.Load() {
		ev, err := l.source.ReadOne()
		if err != nil {
			if l.running.Load() {
				l.logger.Warn("Back key device read failed", "error", err)
				l.running.Store(false)
			}
			return
		}

		if IsBackKey(ev) {
			l.pending.Inc()
		}
	}
}

// Drain returns the number of presses since the last call and resets it.
func (l *Listener) Drain() int {
	return int(l.pending.Swap(0))
}

// Running reports whether the read goroutine is alive.
func (l *Listener) Running() bool {
	return l.running.Load()
}

// Stop closes the source and waits for the read goroutine to exit.
func (l *Listener) Stop() error {
	l.running.Store(false)
	err := l.source.Close()
	l.wg.Wait()
	return err
}
