package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/triangle/glimpse"
)

type LoopOptions struct {
	// ControlFlowWait or ControlFlowPoll, applied before every event
	ControlFlow ControlFlow
	Escape      EscapePolicy
	Logger      *slog.Logger
}

type LoopState struct {
	Flow  ControlFlow
	Stats EventStats
}

// RunLoop pulls events from the source and dispatches them until the control
// flow is set to ControlFlowExit. An error is only returned if the source fails.
func RunLoop(source glimpse.EventSource, opts LoopOptions) (*LoopState, error) {
	if opts.ControlFlow == ControlFlowExit {
		return nil, errors.New("loop must not start with ControlFlowExit")
	}

	dispatcher := &Dispatcher{
		Logger: opts.Logger,
		Escape: opts.Escape,
	}

	state := &LoopState{Flow: opts.ControlFlow}

	for {
		state.Flow = opts.ControlFlow

		startTime := time.Now()

		ev, err := source.WaitEvent(state.Flow == ControlFlowWait)
		if err != nil {
			return state, fmt.Errorf("wait for event: %w", err)
		}

		if ev == nil {
			// polled without anything queued
			continue
		}

		now := time.Now()
		state.Stats.record(ev.Kind(), now, now.Sub(startTime))

		dispatcher.Dispatch(ev, &state.Flow)

		if state.Flow == ControlFlowExit {
			return state, nil
		}
	}
}
