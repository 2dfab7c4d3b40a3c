// Package lifecycle coordinates subsystem startup and shutdown.
// Subsystems register startup and shutdown functions with a Coordinator;
// the application waits for startup to complete and triggers shutdown
// through context cancellation.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
// Used by readiness probes without exposing the full Coordinator.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator tracks registered startup and shutdown functions and owns
// the application-scoped context that signals shutdown.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  sync.WaitGroup
	shutdown sync.WaitGroup
	ready    atomic.Bool
}

// New creates a Coordinator with a fresh application context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the application context. It is cancelled when Shutdown
// is called; shutdown functions should block on it before cleaning up.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a startup function and begins executing it immediately.
// WaitForStartup blocks until all registered startup functions complete.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Add(1)
	go func() {
		defer c.startup.Done()
		fn()
	}()
}

// WaitForStartup blocks until all startup functions have completed,
// then marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.ready.Store(true)
}

// Ready reports whether all startup functions have completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnShutdown registers a shutdown function and starts it in its own goroutine.
// The function should block on Context().Done() before performing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// Shutdown cancels the application context and waits for all shutdown
// functions to complete, up to the given timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
