package tilewall

import (
	"errors"
	"fmt"

	"github.com/tanema/gween/ease"
)

// Config gathers every engine tunable. Start from DefaultConfig.
type Config struct {
	// Grid geometry.
	HexRadius       float64
	HexGap          float64
	SquareSize      float64
	ProximityFactor float64
	Extent          int

	// Viewport size in pixels until the first Resize.
	ViewportWidth  float64
	ViewportHeight float64

	// Camera framing.
	FocusPadding    float64
	OverviewPadding float64
	MinZoom         float64
	MaxZoom         float64
	CameraDuration  float32
	ZoomEpsilon     float64
	PanEpsilon      float64

	// Drag handling.
	RevertDuration    float32
	DragAlpha         float64
	TrashAlpha        float64
	DragDeadZone      float64
	DoubleClickWindow float32
	// TrashZone is a screen-space rect; dropping a tile inside removes it.
	// The zero rect disables the trash.
	TrashZone Rect

	// Language selects the notice catalog.
	Language string
	Debug    bool
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	l := DefaultLayout()
	cam := DefaultCameraOptions()
	return Config{
		HexRadius:         l.HexRadius,
		HexGap:            l.HexGap,
		SquareSize:        l.SquareSize,
		ProximityFactor:   l.ProximityFactor,
		ViewportWidth:     1280,
		ViewportHeight:    720,
		FocusPadding:      cam.FocusPadding,
		OverviewPadding:   cam.OverviewPadding,
		MinZoom:           cam.MinZoom,
		MaxZoom:           cam.MaxZoom,
		CameraDuration:    cam.Duration,
		ZoomEpsilon:       cam.ZoomEpsilon,
		PanEpsilon:        cam.PanEpsilon,
		RevertDuration:    0.3,
		DragAlpha:         0.5,
		TrashAlpha:        0.3,
		DragDeadZone:      defaultDragDeadZone,
		DoubleClickWindow: 0.3,
		Language:          "en",
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.HexRadius <= 0 {
		errs = append(errs, fmt.Errorf("hex radius %v: must be positive", c.HexRadius))
	}
	if c.HexGap < 0 {
		errs = append(errs, fmt.Errorf("hex gap %v: must not be negative", c.HexGap))
	}
	if c.SquareSize <= 0 {
		errs = append(errs, fmt.Errorf("square size %v: must be positive", c.SquareSize))
	}
	if c.ProximityFactor <= 0 {
		errs = append(errs, fmt.Errorf("proximity factor %v: must be positive", c.ProximityFactor))
	}
	if c.Extent < 0 {
		errs = append(errs, fmt.Errorf("extent %d: must not be negative", c.Extent))
	}
	if c.ViewportWidth < 0 || c.ViewportHeight < 0 {
		errs = append(errs, fmt.Errorf("viewport %vx%v: must not be negative", c.ViewportWidth, c.ViewportHeight))
	}
	if c.MinZoom <= 0 || c.MaxZoom < c.MinZoom {
		errs = append(errs, fmt.Errorf("zoom range [%v, %v]: invalid", c.MinZoom, c.MaxZoom))
	}
	if c.CameraDuration <= 0 || c.RevertDuration <= 0 {
		errs = append(errs, errors.New("animation durations must be positive"))
	}
	if c.DragDeadZone < 0 {
		errs = append(errs, fmt.Errorf("drag dead zone %v: must not be negative", c.DragDeadZone))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Layout returns the grid geometry described by c.
func (c Config) Layout() Layout {
	return Layout{
		HexRadius:       c.HexRadius,
		HexGap:          c.HexGap,
		SquareSize:      c.SquareSize,
		ProximityFactor: c.ProximityFactor,
		Extent:          c.Extent,
	}
}

// CameraOptions returns the camera tunables described by c.
func (c Config) CameraOptions() CameraOptions {
	return CameraOptions{
		FocusPadding:    c.FocusPadding,
		OverviewPadding: c.OverviewPadding,
		MinZoom:         c.MinZoom,
		MaxZoom:         c.MaxZoom,
		Duration:        c.CameraDuration,
		Ease:            ease.OutCubic,
		ZoomEpsilon:     c.ZoomEpsilon,
		PanEpsilon:      c.PanEpsilon,
	}
}
