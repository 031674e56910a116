package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/triangle/config"
	"github.com/oliverbestmann/triangle/glimpse"
	"github.com/oliverbestmann/triangle/pulse"
	"github.com/pkg/profile"
)

type RunOptions struct {
	Window   glimpse.WindowOptions
	Instance pulse.InstanceOptions
	Loop     LoopOptions

	// profiling mode to run with: cpu, mem, trace or empty for none
	Profile string
}

// OptionsFromConfig resolves the configuration once, including the
// platform family for the given GOOS.
func OptionsFromConfig(cfg *config.Config, goos string) (RunOptions, error) {
	if err := cfg.Validate(); err != nil {
		return RunOptions{}, fmt.Errorf("validate config: %w", err)
	}

	family, err := pulse.ResolveFamily(cfg.Platform, goos)
	if err != nil {
		return RunOptions{}, err
	}

	flow, err := ParseControlFlow(cfg.ControlFlow)
	if err != nil {
		return RunOptions{}, err
	}

	escape, err := ParseEscapePolicy(cfg.Escape)
	if err != nil {
		return RunOptions{}, err
	}

	instance := pulse.DefaultInstanceOptions()
	instance.ApplicationName = cfg.Application.Name
	instance.EngineName = cfg.Application.Engine
	instance.Validation = cfg.Validation
	instance.Family = family

	opts := RunOptions{
		Window: glimpse.WindowOptions{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
		},
		Instance: instance,
		Loop: LoopOptions{
			ControlFlow: flow,
			Escape:      escape,
		},
		Profile: cfg.Profile,
	}

	return opts, nil
}

// Run creates the window and the vulkan instance, then runs the event
// loop until the window is closed (or escape is pressed).
func Run(opts RunOptions) error {
	if prof := startProfile(opts.Profile); prof != nil {
		defer prof.Stop()
	}

	app, err := NewApp(opts.Window, opts.Instance)
	if err != nil {
		return err
	}

	defer app.Release()

	state, err := app.Run(opts.Loop)
	if err != nil {
		return fmt.Errorf("event loop: %w", err)
	}

	slog.Debug("Event loop finished", slog.Any("events", state.Stats))

	return nil
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.NoShutdownHook)
	case "trace":
		return profile.Start(profile.TraceProfile, profile.NoShutdownHook)
	default:
		return nil
	}
}
