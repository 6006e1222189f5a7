package config

import (
	"fmt"
	"time"

	"github.com/dshills/inkstorm/internal/input"
	"github.com/dshills/inkstorm/internal/input/gesture"
	"github.com/dshills/inkstorm/internal/input/wheel"
)

// Config is the root configuration.
type Config struct {
	// Gesture holds right-button disambiguation settings.
	Gesture GestureConfig `toml:"gesture"`

	// Wheel holds scroll remapping settings.
	Wheel WheelConfig `toml:"wheel"`

	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// GestureConfig provides the gesture arbiter tunables.
type GestureConfig struct {
	// DragThreshold is the displacement in pixels past which a
	// right-button press commits to a pan.
	DragThreshold float64 `toml:"drag_threshold"`

	// ClickTimeMS is the maximum press duration in milliseconds for the
	// click path.
	ClickTimeMS int `toml:"click_time_ms"`
}

// WheelConfig provides the scroll remapper tunables.
type WheelConfig struct {
	// ZoomIn is the zoom factor per wheel step toward the user.
	ZoomIn float64 `toml:"zoom_in"`

	// ZoomOut is the zoom factor per wheel step away from the user.
	ZoomOut float64 `toml:"zoom_out"`

	// MinZoom is the lower camera zoom bound.
	MinZoom float64 `toml:"min_zoom"`

	// MaxZoom is the upper camera zoom bound.
	MaxZoom float64 `toml:"max_zoom"`

	// PanScale converts wheel delta units to pixels for modifier pans.
	PanScale float64 `toml:"pan_scale"`
}

// LogConfig provides logging settings.
type LogConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File is the log file path. Empty logs to stderr.
	File string `toml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	g := gesture.DefaultConfig()
	w := wheel.DefaultConfig()
	return Config{
		Gesture: GestureConfig{
			DragThreshold: g.DragThreshold,
			ClickTimeMS:   int(g.ClickTime / time.Millisecond),
		},
		Wheel: WheelConfig{
			ZoomIn:   w.ZoomIn,
			ZoomOut:  w.ZoomOut,
			MinZoom:  w.MinZoom,
			MaxZoom:  w.MaxZoom,
			PanScale: w.PanScale,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the input layer cannot
// operate with.
func (c Config) Validate() error {
	if c.Gesture.DragThreshold < 0 {
		return fmt.Errorf("%w: gesture.drag_threshold %v is negative", ErrInvalidValue, c.Gesture.DragThreshold)
	}
	if c.Gesture.ClickTimeMS <= 0 {
		return fmt.Errorf("%w: gesture.click_time_ms %d must be positive", ErrInvalidValue, c.Gesture.ClickTimeMS)
	}
	if c.Wheel.ZoomIn <= 1 {
		return fmt.Errorf("%w: wheel.zoom_in %v must be greater than 1", ErrInvalidValue, c.Wheel.ZoomIn)
	}
	if c.Wheel.ZoomOut <= 0 || c.Wheel.ZoomOut >= 1 {
		return fmt.Errorf("%w: wheel.zoom_out %v must be in (0, 1)", ErrInvalidValue, c.Wheel.ZoomOut)
	}
	if c.Wheel.MinZoom <= 0 {
		return fmt.Errorf("%w: wheel.min_zoom %v must be positive", ErrInvalidValue, c.Wheel.MinZoom)
	}
	if c.Wheel.MaxZoom < c.Wheel.MinZoom {
		return fmt.Errorf("%w: wheel.max_zoom %v below min_zoom %v", ErrInvalidValue, c.Wheel.MaxZoom, c.Wheel.MinZoom)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	return nil
}

// InputConfig converts the configuration into the input router's form.
func (c Config) InputConfig() input.Config {
	return input.Config{
		Gesture: gesture.Config{
			DragThreshold: c.Gesture.DragThreshold,
			ClickTime:     time.Duration(c.Gesture.ClickTimeMS) * time.Millisecond,
		},
		Wheel: wheel.Config{
			ZoomIn:   c.Wheel.ZoomIn,
			ZoomOut:  c.Wheel.ZoomOut,
			MinZoom:  c.Wheel.MinZoom,
			MaxZoom:  c.Wheel.MaxZoom,
			PanScale: c.Wheel.PanScale,
		},
	}
}
