package glimpse

import (
	"fmt"

	"github.com/oliverbestmann/triangle/glm"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/size"
)

// Event is anything a window reports to the event loop.
type Event interface {
	// Kind is a short, stable name of the event type, e.g. "keyboardInput".
	Kind() string
}

type CloseRequested struct{}

type KeyboardInput struct {
	Code      key.Code
	Direction key.Direction
	Modifiers key.Modifiers

	// platform specific scancode of the key
	Scancode int

	// layout dependent name of printable keys, empty for everything else
	Name string
}

type MouseInput struct {
	Button    mouse.Button
	Direction mouse.Direction
	Modifiers key.Modifiers
}

type CursorMoved struct {
	// position in window coordinates, relative to the top left corner
	Position glm.Vec2d

	// movement since the previous CursorMoved event
	Delta glm.Vec2d
}

type Resized struct {
	size.Event
}

type Moved struct {
	Position glm.Vec2i
}

type Focused struct {
	Focused bool
}

type Iconified struct {
	Iconified bool
}

type Scrolled struct {
	Offset glm.Vec2d
}

type ReceivedCharacter struct {
	Char rune
}

type RedrawRequested struct{}

func (CloseRequested) Kind() string    { return "closeRequested" }
func (KeyboardInput) Kind() string     { return "keyboardInput" }
func (MouseInput) Kind() string        { return "mouseInput" }
func (CursorMoved) Kind() string       { return "cursorMoved" }
func (Resized) Kind() string           { return "resized" }
func (Moved) Kind() string             { return "moved" }
func (Focused) Kind() string           { return "focused" }
func (Iconified) Kind() string         { return "iconified" }
func (Scrolled) Kind() string          { return "scrolled" }
func (ReceivedCharacter) Kind() string { return "receivedCharacter" }
func (RedrawRequested) Kind() string   { return "redrawRequested" }

func (ev Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", ev.WidthPx, ev.HeightPx)
}

func (ev Moved) String() string {
	return fmt.Sprintf("Moved%s", ev.Position)
}

func (ev Focused) String() string {
	return fmt.Sprintf("Focused(%t)", ev.Focused)
}

func (ev Iconified) String() string {
	return fmt.Sprintf("Iconified(%t)", ev.Iconified)
}

func (ev Scrolled) String() string {
	return fmt.Sprintf("Scrolled%s", ev.Offset)
}

func (ev ReceivedCharacter) String() string {
	return fmt.Sprintf("ReceivedCharacter(%q)", ev.Char)
}

func (ev RedrawRequested) String() string {
	return "RedrawRequested"
}

// IsEscape reports whether the event is about the escape key.
func (ev KeyboardInput) IsEscape() bool {
	return ev.Code == key.CodeEscape
}
