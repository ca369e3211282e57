// Interrupt handling for the REPL loop: SIGINT cancels whatever submission
// is currently being evaluated without killing the process.
//
// Grounded on termutil/printer.go's InstallSignalHandler/ClearSignal/
// WithCancel trio (InstallSignalHandler installs one process-wide
// signal.Notify, WithCancel hands back a context.Context tied to it). The
// original also threads signal state into a Printer's Ok() check; Nico has
// no streaming-table Printer, so only the context-cancellation half is
// kept here, wired to the REPL's per-submission context instead.
package repl

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grailbio/base/errors"
)

var (
	signalOnce  sync.Once
	signalState uint32

	ctxMu     sync.Mutex
	activeCtx = map[*interruptibleContext]struct{}{}
)

// installSignalHandler arranges for SIGINT to cancel every context handed
// out by withCancel. Safe to call more than once; only the first call
// installs the handler.
func installSignalHandler() {
	signalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		go func() {
			for range ch {
				fmt.Fprintln(os.Stderr, "Interrupted")
				atomic.StoreUint32(&signalState, 1)
				ctxMu.Lock()
				for c := range activeCtx {
					c.cancel()
				}
				ctxMu.Unlock()
			}
		}()
	})
}

// clearSignal re-arms the interrupt state for the next submission.
func clearSignal() {
	atomic.StoreUint32(&signalState, 0)
}

type interruptibleContext struct {
	bg          context.Context
	interrupted uint32
	ch          chan struct{}
}

var errInterrupted = errors.E("interrupted by user")

func (c *interruptibleContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (c *interruptibleContext) Done() <-chan struct{}        { return c.ch }

func (c *interruptibleContext) Err() error {
	if atomic.LoadUint32(&c.interrupted) != 0 {
		return errInterrupted
	}
	return nil
}

func (c *interruptibleContext) Value(key interface{}) interface{} { return c.bg.Value(key) }

func (c *interruptibleContext) String() string {
	return fmt.Sprintf("interruptibleContext: %v", c.Err())
}

// REQUIRES: ctxMu held.
func (c *interruptibleContext) cancel() {
	if _, ok := activeCtx[c]; !ok {
		return
	}
	delete(activeCtx, c)
	close(c.ch)
	atomic.StoreUint32(&c.interrupted, 1)
}

// withCancel wraps bg in a context that's cancelled the moment SIGINT
// arrives, for the duration of one REPL submission.
func withCancel(bg context.Context) (context.Context, context.CancelFunc) {
	c := &interruptibleContext{bg: bg, ch: make(chan struct{}, 1)}
	ctxMu.Lock()
	activeCtx[c] = struct{}{}
	ctxMu.Unlock()
	return c, func() {
		ctxMu.Lock()
		defer ctxMu.Unlock()
		c.cancel()
	}
}
