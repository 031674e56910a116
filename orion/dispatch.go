package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/glimpse"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Dispatcher logs every event and updates the control flow in response to
// close requests and the escape key.
type Dispatcher struct {
	Logger *slog.Logger
	Escape EscapePolicy
}

func (d *Dispatcher) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}

	return d.Logger
}

// Dispatch handles one event. The flow is only ever moved to ControlFlowExit.
func (d *Dispatcher) Dispatch(ev glimpse.Event, flow *ControlFlow) {
	log := d.logger()

	switch ev := ev.(type) {
	case glimpse.CloseRequested:
		log.Info("Close requested")
		*flow = ControlFlowExit

	case glimpse.KeyboardInput:
		log.Info("Keyboard input",
			slog.String("key", ev.Code.String()),
			slog.String("name", ev.Name),
			slog.String("state", keyState(ev.Direction)),
		)

		if ev.IsEscape() {
			d.escape(log, ev.Direction, flow)
		}

	case glimpse.MouseInput:
		log.Info("Mouse input",
			slog.String("button", buttonName(ev.Button)),
			slog.String("state", mouseState(ev.Direction)),
		)

	case glimpse.CursorMoved:
		log.Info("Cursor moved",
			slog.String("position", ev.Position.String()),
		)

	default:
		log.Info("Other event",
			slog.String("kind", ev.Kind()),
			slog.String("event", fmt.Sprint(ev)),
		)
	}
}

func (d *Dispatcher) escape(log *slog.Logger, direction key.Direction, flow *ControlFlow) {
	switch direction {
	case key.DirPress:
		log.Info("Escape key pressed!")

		if d.Escape == EscapeExit {
			*flow = ControlFlowExit
		}

	case key.DirRelease:
		log.Info("Escape key released!")
	}
}

func keyState(direction key.Direction) string {
	switch direction {
	case key.DirPress:
		return "pressed"
	case key.DirRelease:
		return "released"
	default:
		return "none"
	}
}

func mouseState(direction mouse.Direction) string {
	switch direction {
	case mouse.DirPress:
		return "pressed"
	case mouse.DirRelease:
		return "released"
	default:
		return "none"
	}
}

func buttonName(button mouse.Button) string {
	switch button {
	case mouse.ButtonLeft:
		return "left"
	case mouse.ButtonMiddle:
		return "middle"
	case mouse.ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("button%d", int(button))
	}
}
