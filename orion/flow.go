package orion

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ControlFlow,EscapePolicy -output=flow_string.go

// ControlFlow tells the event loop what to do after an event was dispatched.
type ControlFlow int

const (
	// ControlFlowWait blocks until the next event arrives.
	ControlFlowWait ControlFlow = iota

	// ControlFlowPoll checks for events without blocking.
	ControlFlowPoll

	// ControlFlowExit terminates the event loop.
	ControlFlowExit
)

func ParseControlFlow(value string) (ControlFlow, error) {
	switch strings.ToLower(value) {
	case "", "wait":
		return ControlFlowWait, nil
	case "poll":
		return ControlFlowPoll, nil
	default:
		return ControlFlowWait, fmt.Errorf("unknown control flow %q", value)
	}
}

// EscapePolicy decides what pressing the escape key does.
type EscapePolicy int

const (
	// EscapeExit terminates the event loop on escape press.
	EscapeExit EscapePolicy = iota

	// EscapeLog only logs the escape key.
	EscapeLog
)

func ParseEscapePolicy(value string) (EscapePolicy, error) {
	switch strings.ToLower(value) {
	case "", "exit":
		return EscapeExit, nil
	case "log":
		return EscapeLog, nil
	default:
		return EscapeExit, fmt.Errorf("unknown escape policy %q", value)
	}
}
