package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/glimpse"
	"github.com/oliverbestmann/triangle/pulse"
)

// App exclusively owns the window and the vulkan instance created for it.
// Both live until Release is called.
type App struct {
	Window   glimpse.Window
	Instance *pulse.Instance
}

// NewApp opens the window and then creates the instance for its display.
func NewApp(window glimpse.WindowOptions, instance pulse.InstanceOptions) (*App, error) {
	win, err := glimpse.NewWindow(window)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	width, height := win.GetSize()
	slog.Debug("Window created",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	inst, err := pulse.CreateInstance(win, instance)
	if err != nil {
		win.Terminate()
		return nil, fmt.Errorf("create vulkan instance: %w", err)
	}

	return &App{Window: win, Instance: inst}, nil
}

// Run pumps the window's events until the loop exits.
func (a *App) Run(opts LoopOptions) (*LoopState, error) {
	return RunLoop(a.Window, opts)
}

func (a *App) Release() {
	if a.Instance != nil {
		a.Instance.Release()
		a.Instance = nil
	}

	if a.Window != nil {
		a.Window.Terminate()
		a.Window = nil
	}
}
