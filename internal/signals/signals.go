// Package signals turns OS signals into context cancellation and terminal
// width changes. It imports nothing from gauge and does not log.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SetupSignalContext creates a context that's canceled on SIGINT/SIGTERM.
// A second signal is left to the default handler, so a stuck cleanup can
// still be interrupted.
func SetupSignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// ResizeHandler reports the terminal width whenever SIGWINCH arrives.
type ResizeHandler struct {
	sigChan  chan os.Signal
	measure  func() int
	onResize func(columns int)
	done     chan struct{}
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
}

// NewResizeHandler creates a handler. measure returns the current width
// and must bypass any cached size; onResize receives the width when positive.
func NewResizeHandler(measure func() int, onResize func(columns int)) *ResizeHandler {
	return &ResizeHandler{
		sigChan:  make(chan os.Signal, 1),
		measure:  measure,
		onResize: onResize,
		done:     make(chan struct{}),
	}
}

// Start begins listening for resize signals. Calls after the first are no-ops.
func (h *ResizeHandler) Start() {
	h.startMu.Lock()
	defer h.startMu.Unlock()
	if h.started {
		return
	}
	h.started = true

	signal.Notify(h.sigChan, syscall.SIGWINCH)
	go h.handle()
}

// StartWithContext starts the handler and stops it when ctx ends.
func (h *ResizeHandler) StartWithContext(ctx context.Context) {
	h.Start()
	go func() {
		select {
		case <-ctx.Done():
			h.Stop()
		case <-h.done:
		}
	}()
}

// Stop stops listening for resize signals. Safe to call multiple times.
func (h *ResizeHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
	})
}

func (h *ResizeHandler) handle() {
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.TriggerResize()
		}
	}
}

// TriggerResize measures and reports the width immediately.
func (h *ResizeHandler) TriggerResize() {
	if h.measure == nil || h.onResize == nil {
		return
	}
	if columns := h.measure(); columns > 0 {
		h.onResize(columns)
	}
}
