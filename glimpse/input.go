//go:build !headless

package glimpse

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/triangle/glm"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
)

// inputQueue collects the events produced by the glfw callbacks
// until the event loop picks them up.
type inputQueue struct {
	events []Event

	keyNames *keyNameCache

	cursor    glm.Vec2d
	hasCursor bool
}

func (q *inputQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *inputQueue) empty() bool {
	return len(q.events) == 0
}

func (q *inputQueue) pop() Event {
	if len(q.events) == 0 {
		return nil
	}

	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]

	return ev
}

func (q *inputQueue) keyboardInput(glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}

	ev := KeyboardInput{
		Code:      keyOf(glfwKey),
		Direction: keyDirectionOf(action),
		Modifiers: modifiersOf(mods),
		Scancode:  scancode,
	}

	if q.keyNames != nil {
		ev.Name = q.keyNames.Get(glfwKey, scancode)
	}

	q.push(ev)
}

func (q *inputQueue) mouseInput(btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	q.push(MouseInput{
		Button:    mouseButtonOf(btn),
		Direction: mouseDirectionOf(action),
		Modifiers: modifiersOf(mods),
	})
}

func (q *inputQueue) cursorMoved(xpos, ypos float64) {
	pos := glm.Vec2d{xpos, ypos}

	var delta glm.Vec2d
	if q.hasCursor {
		delta = pos.Sub(q.cursor)
	}

	q.cursor = pos
	q.hasCursor = true

	q.push(CursorMoved{Position: pos, Delta: delta})
}

func (q *inputQueue) resized(width, height int) {
	q.push(Resized{
		Event: size.Event{
			WidthPx:     width,
			HeightPx:    height,
			PixelsPerPt: 1,
		},
	})
}

func configureInput(window *glfw.Window, input *inputQueue) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		// the event loop decides when to exit, not glfw
		_win.SetShouldClose(false)
		input.push(CloseRequested{})
	})

	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		input.keyboardInput(glfwKey, scancode, action, mods)
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		input.mouseInput(btn, action, mods)
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		input.cursorMoved(xpos, ypos)
	})

	window.SetSizeCallback(func(_win *glfw.Window, width int, height int) {
		input.resized(width, height)
	})

	window.SetPosCallback(func(_win *glfw.Window, xpos int, ypos int) {
		input.push(Moved{Position: glm.Vec2i{xpos, ypos}})
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		input.push(Focused{Focused: focused})
	})

	window.SetIconifyCallback(func(_win *glfw.Window, iconified bool) {
		input.push(Iconified{Iconified: iconified})
	})

	window.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		input.push(Scrolled{Offset: glm.Vec2d{xoff, yoff}})
	})

	window.SetCharCallback(func(_win *glfw.Window, char rune) {
		input.push(ReceivedCharacter{Char: char})
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		input.push(RedrawRequested{})
	})
}

func keyDirectionOf(action glfw.Action) key.Direction {
	switch action {
	case glfw.Press:
		return key.DirPress
	case glfw.Release:
		return key.DirRelease
	default:
		return key.DirNone
	}
}

func mouseDirectionOf(action glfw.Action) mouse.Direction {
	switch action {
	case glfw.Press:
		return mouse.DirPress
	case glfw.Release:
		return mouse.DirRelease
	default:
		return mouse.DirNone
	}
}

func mouseButtonOf(btn glfw.MouseButton) mouse.Button {
	switch btn {
	case glfw.MouseButtonLeft:
		return mouse.ButtonLeft
	case glfw.MouseButtonMiddle:
		return mouse.ButtonMiddle
	case glfw.MouseButtonRight:
		return mouse.ButtonRight
	default:
		// extra buttons keep their glfw order after the three standard ones
		return mouse.Button(int(btn) + 1)
	}
}

func modifiersOf(mods glfw.ModifierKey) key.Modifiers {
	var result key.Modifiers

	if mods&glfw.ModShift != 0 {
		result |= key.ModShift
	}

	if mods&glfw.ModControl != 0 {
		result |= key.ModControl
	}

	if mods&glfw.ModAlt != 0 {
		result |= key.ModAlt
	}

	if mods&glfw.ModSuper != 0 {
		result |= key.ModMeta
	}

	return result
}
