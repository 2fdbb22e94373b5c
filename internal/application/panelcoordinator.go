package application

import (
	"errors"
	"sync/atomic"
)

// ErrPanelNotInitialized is the panic value raised when a consumer uses a
// PanelCoordinator that the composition root never created.
var ErrPanelNotInitialized = errors.New("panel coordinator used before initialization")

// PanelCoordinator decides whether the navigation panel auto-opens the first
// time the home screen is shown. It starts armed and is consumed at most once
// per process; nothing is persisted, so every new process starts armed again.
//
// One instance is created by the composition root and shared with every
// consumer. It is safe for concurrent use.
type PanelCoordinator struct {
	consumed atomic.Bool
}

// NewPanelCoordinator returns an armed coordinator.
func NewPanelCoordinator() *PanelCoordinator {
	return &PanelCoordinator{}
}

// ShouldBeInitiallyOpen reports whether the panel should still auto-open.
func (c *PanelCoordinator) ShouldBeInitiallyOpen() bool {
	c.mustBeInitialized()
	return !c.consumed.Load()
}

// MarkPanelAsOpened consumes the flag. Further calls have no effect.
func (c *PanelCoordinator) MarkPanelAsOpened() {
	c.mustBeInitialized()
	c.consumed.Store(true)
}

// ClaimInitialOpen consumes the flag and reports whether this call was the
// one that consumed it. Exactly one caller per process gets true.
func (c *PanelCoordinator) ClaimInitialOpen() bool {
	c.mustBeInitialized()
	return c.consumed.CompareAndSwap(false, true)
}

func (c *PanelCoordinator) mustBeInitialized() {
	if c == nil {
		panic(ErrPanelNotInitialized)
	}
}
