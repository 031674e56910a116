//go:build !headless

package glimpse

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must only be called from the main thread
	runtime.LockOSThread()
}

type glfwWindow struct {
	win   *glfw.Window
	input inputQueue
}

func NewWindow(opts WindowOptions) (Window, error) {
	opts = opts.withDefaults()

	keyNames, err := newKeyNameCache(128, glfw.GetKeyName)
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// the instance is created through vulkan, not through an OpenGL context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		win:   window,
		input: inputQueue{keyNames: keyNames},
	}

	configureInput(window, &w.input)

	return w, nil
}

func (g *glfwWindow) WaitEvent(block bool) (Event, error) {
	if g.input.empty() {
		if block {
			// WaitEvents may wake up without producing anything we are
			// interested in, e.g. after a repeated key press
			for g.input.empty() {
				glfw.WaitEvents()
			}
		} else {
			glfw.PollEvents()
		}
	}

	return g.input.pop(), nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) RequiredInstanceExtensions() ([]string, error) {
	if !glfw.VulkanSupported() {
		return nil, errors.New("no vulkan loader found")
	}

	extensions := g.win.GetRequiredInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("platform does not report any surface extensions")
	}

	return extensions, nil
}

func (g *glfwWindow) InstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}
