package glimpse

import (
	"errors"
	"unsafe"
)

// ErrDrained is returned by an EventSource that will never produce another event.
// An OS window never drains, it blocks instead.
var ErrDrained = errors.New("event source drained")

// EventSource hands out one event per call. With block set, WaitEvent
// does not return until an event is available. Without block, a nil event
// and nil error mean that nothing is queued right now.
type EventSource interface {
	WaitEvent(block bool) (Event, error)
}

type Window interface {
	EventSource

	// RequiredInstanceExtensions lists the platform surface extensions
	// a vulkan instance must enable to present to this window's display.
	RequiredInstanceExtensions() ([]string, error)

	// InstanceProcAddr returns the loader entry point vkGetInstanceProcAddr.
	InstanceProcAddr() unsafe.Pointer

	GetSize() (uint32, uint32)
	Terminate()
}

type WindowOptions struct {
	Title  string
	Width  int
	Height int
}

func (opts WindowOptions) withDefaults() WindowOptions {
	if opts.Title == "" {
		opts.Title = "Triangle Foobar"
	}

	if opts.Width <= 0 {
		opts.Width = 800
	}

	if opts.Height <= 0 {
		opts.Height = 600
	}

	return opts
}
