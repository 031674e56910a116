//go:build !headless

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/mobile/event/key"
)

func keyOf(glfwKey glfw.Key) key.Code {
	code, ok := glfwToKey[glfwKey]
	if !ok {
		slog.Warn(
			"Unknown key code",
			slog.Int("glfwKey", int(glfwKey)),
		)

		return key.CodeUnknown
	}

	return code
}

type keyNameKey struct {
	key      glfw.Key
	scancode int
}

// keyNameCache remembers the layout specific names of keys, looking them
// up in glfw is a cgo call for every key stroke otherwise.
type keyNameCache struct {
	resolve func(glfw.Key, int) string
	cache   *lru.Cache[keyNameKey, string]
}

func newKeyNameCache(size int, resolve func(glfw.Key, int) string) (*keyNameCache, error) {
	cache, err := lru.New[keyNameKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("key name cache: %w", err)
	}

	return &keyNameCache{
		resolve: resolve,
		cache:   cache,
	}, nil
}

func (c *keyNameCache) Get(glfwKey glfw.Key, scancode int) string {
	cacheKey := keyNameKey{key: glfwKey, scancode: scancode}

	name, ok := c.cache.Get(cacheKey)
	if ok {
		return name
	}

	name = c.resolve(glfwKey, scancode)
	c.cache.Add(cacheKey, name)

	return name
}

var glfwToKey = map[glfw.Key]key.Code{
	glfw.KeyA: key.CodeA,
	glfw.KeyB: key.CodeB,
	glfw.KeyC: key.CodeC,
	glfw.KeyD: key.CodeD,
	glfw.KeyE: key.CodeE,
	glfw.KeyF: key.CodeF,
	glfw.KeyG: key.CodeG,
	glfw.KeyH: key.CodeH,
	glfw.KeyI: key.CodeI,
	glfw.KeyJ: key.CodeJ,
	glfw.KeyK: key.CodeK,
	glfw.KeyL: key.CodeL,
	glfw.KeyM: key.CodeM,
	glfw.KeyN: key.CodeN,
	glfw.KeyO: key.CodeO,
	glfw.KeyP: key.CodeP,
	glfw.KeyQ: key.CodeQ,
	glfw.KeyR: key.CodeR,
	glfw.KeyS: key.CodeS,
	glfw.KeyT: key.CodeT,
	glfw.KeyU: key.CodeU,
	glfw.KeyV: key.CodeV,
	glfw.KeyW: key.CodeW,
	glfw.KeyX: key.CodeX,
	glfw.KeyY: key.CodeY,
	glfw.KeyZ: key.CodeZ,

	glfw.Key0: key.Code0,
	glfw.Key1: key.Code1,
	glfw.Key2: key.Code2,
	glfw.Key3: key.Code3,
	glfw.Key4: key.Code4,
	glfw.Key5: key.Code5,
	glfw.Key6: key.Code6,
	glfw.Key7: key.Code7,
	glfw.Key8: key.Code8,
	glfw.Key9: key.Code9,

	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeDeleteBackspace,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyMinus:        key.CodeHyphenMinus,
	glfw.KeyEqual:        key.CodeEqualSign,
	glfw.KeyLeftBracket:  key.CodeLeftSquareBracket,
	glfw.KeyRightBracket: key.CodeRightSquareBracket,
	glfw.KeyBackslash:    key.CodeBackslash,
	glfw.KeySemicolon:    key.CodeSemicolon,
	glfw.KeyApostrophe:   key.CodeApostrophe,
	glfw.KeyGraveAccent:  key.CodeGraveAccent,
	glfw.KeyComma:        key.CodeComma,
	glfw.KeyPeriod:       key.CodeFullStop,
	glfw.KeySlash:        key.CodeSlash,
	glfw.KeyCapsLock:     key.CodeCapsLock,
	glfw.KeyPause:        key.CodePause,

	glfw.KeyHome:     key.CodeHome,
	glfw.KeyEnd:      key.CodeEnd,
	glfw.KeyPageUp:   key.CodePageUp,
	glfw.KeyPageDown: key.CodePageDown,
	glfw.KeyLeft:     key.CodeLeftArrow,
	glfw.KeyRight:    key.CodeRightArrow,
	glfw.KeyUp:       key.CodeUpArrow,
	glfw.KeyDown:     key.CodeDownArrow,

	glfw.KeyF1:  key.CodeF1,
	glfw.KeyF2:  key.CodeF2,
	glfw.KeyF3:  key.CodeF3,
	glfw.KeyF4:  key.CodeF4,
	glfw.KeyF5:  key.CodeF5,
	glfw.KeyF6:  key.CodeF6,
	glfw.KeyF7:  key.CodeF7,
	glfw.KeyF8:  key.CodeF8,
	glfw.KeyF9:  key.CodeF9,
	glfw.KeyF10: key.CodeF10,
	glfw.KeyF11: key.CodeF11,
	glfw.KeyF12: key.CodeF12,

	glfw.KeyNumLock:    key.CodeKeypadNumLock,
	glfw.KeyKPDivide:   key.CodeKeypadSlash,
	glfw.KeyKPMultiply: key.CodeKeypadAsterisk,
	glfw.KeyKPSubtract: key.CodeKeypadHyphenMinus,
	glfw.KeyKPAdd:      key.CodeKeypadPlusSign,
	glfw.KeyKPEnter:    key.CodeKeypadEnter,
	glfw.KeyKPDecimal:  key.CodeKeypadFullStop,
	glfw.KeyKPEqual:    key.CodeKeypadEqualSign,
	glfw.KeyKP0:        key.CodeKeypad0,
	glfw.KeyKP1:        key.CodeKeypad1,
	glfw.KeyKP2:        key.CodeKeypad2,
	glfw.KeyKP3:        key.CodeKeypad3,
	glfw.KeyKP4:        key.CodeKeypad4,
	glfw.KeyKP5:        key.CodeKeypad5,
	glfw.KeyKP6:        key.CodeKeypad6,
	glfw.KeyKP7:        key.CodeKeypad7,
	glfw.KeyKP8:        key.CodeKeypad8,
	glfw.KeyKP9:        key.CodeKeypad9,

	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyLeftSuper:    key.CodeLeftGUI,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyRightSuper:   key.CodeRightGUI,
}
