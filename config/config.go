package config

import (
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Application ApplicationConfig `yaml:"application"`

	// enable the khronos validation layer
	Validation bool `yaml:"validation"`

	// auto, generic or portability
	Platform string `yaml:"platform"`

	// what to do when escape is pressed: exit or log
	Escape string `yaml:"escape"`

	// wait blocks for the next event, poll does not
	ControlFlow string `yaml:"control_flow"`

	LogLevel string `yaml:"log_level"`

	// optional profiling mode: cpu, mem or trace
	Profile string `yaml:"profile"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type ApplicationConfig struct {
	Name   string `yaml:"name"`
	Engine string `yaml:"engine"`
}

const (
	EscapeExit = "exit"
	EscapeLog  = "log"

	ControlFlowWait = "wait"
	ControlFlowPoll = "poll"
)

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Triangle Foobar",
			Width:  800,
			Height: 600,
		},
		Application: ApplicationConfig{
			Name:   "VulkanTriangle",
			Engine: "No Engine",
		},
		Validation:  true,
		Platform:    "auto",
		Escape:      EscapeExit,
		ControlFlow: ControlFlowWait,
		LogLevel:    "info",
	}
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if strings.TrimSpace(c.Window.Title) == "" {
		return fmt.Errorf("window title must not be empty")
	}

	if strings.TrimSpace(c.Application.Name) == "" {
		return fmt.Errorf("application name must not be empty")
	}

	if err := oneOf("platform", c.Platform, "auto", "generic", "portability"); err != nil {
		return err
	}

	if err := oneOf("escape", c.Escape, EscapeExit, EscapeLog); err != nil {
		return err
	}

	if err := oneOf("control_flow", c.ControlFlow, ControlFlowWait, ControlFlowPoll); err != nil {
		return err
	}

	if err := oneOf("profile", c.Profile, "", "cpu", "mem", "trace"); err != nil {
		return err
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses the configured log level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}

	return fmt.Errorf("invalid %s %q, expected one of %s", field, value, strings.Join(quoted(allowed), ", "))
}

func quoted(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, fmt.Sprintf("%q", value))
	}

	return result
}
