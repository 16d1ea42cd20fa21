package view

import (
	"context"

	"github.com/looplab/fsm"

	"materi/internal/config/logger"
)

// Lifecycle states
const (
	Unmounted = "unmounted"
	Mounted   = "mounted"
	Busy      = "busy"
	Disposed  = "disposed"
)

// Lifecycle events
const (
	Mount   = "mount"
	Begin   = "begin"
	End     = "end"
	Dispose = "dispose"
)

// Lifecycle callbacks
const (
	AfterMount   = "after_" + Mount
	AfterDispose = "after_" + Dispose
)

// newLifecycle creates the state machine gating dispatch on a controller
func newLifecycle(id string, log logger.Logger, onMount, onDispose func()) *fsm.FSM {
	return fsm.NewFSM(
		Unmounted,
		fsm.Events{
			{Name: Mount, Src: []string{Unmounted}, Dst: Mounted},
			{Name: Begin, Src: []string{Mounted}, Dst: Busy},
			{Name: End, Src: []string{Busy}, Dst: Mounted},
			{Name: Dispose, Src: []string{Unmounted, Mounted, Busy}, Dst: Disposed},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("VIEW %s: %s → %s (trigger: %s)", id, e.Src, e.Dst, e.Event)
			},
			AfterMount: func(ctx context.Context, e *fsm.Event) {
				onMount()
			},
			AfterDispose: func(ctx context.Context, e *fsm.Event) {
				onDispose()
			},
		},
	)
}
