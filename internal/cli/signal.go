package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// SignalContext is cancelled by SIGINT or SIGTERM and remembers which signal
// arrived. It also decides how an editing session that ended early is
// reported to the user.
type SignalContext struct {
	context.Context
	cancel context.CancelFunc
	caught atomic.Pointer[os.Signal]
}

// NewSignalContext starts watching for interrupts until the context is done.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{Context: ctx, cancel: cancel}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			sc.caught.Store(&sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Cancel stops the watcher and cancels the context.
func (sc *SignalContext) Cancel() {
	sc.cancel()
}

// Signal returns the signal that cancelled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	if sig := sc.caught.Load(); sig != nil {
		return *sig
	}
	return nil
}

// Interrupted reports whether err ended the session because the user walked
// away rather than because something failed. A save failure is never an
// interrupt, even if a signal arrived meanwhile.
func (sc *SignalContext) Interrupted(err error) bool {
	return isInterrupted(err)
}

// Farewell prints the goodbye line for an interrupted session and swallows
// the interrupt. Any other error is returned unchanged.
func (sc *SignalContext) Farewell(w io.Writer, err error) error {
	if !sc.Interrupted(err) {
		return err
	}
	fmt.Fprintln(w, "\nInterrupted by user. Goodbye!")
	return nil
}

// isInterrupted matches a cancelled prompt or closed input.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}
