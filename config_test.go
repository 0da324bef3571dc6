package tilewall

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Layout() != DefaultLayout() {
		t.Errorf("Layout = %+v", cfg.Layout())
	}
	opts := cfg.CameraOptions()
	def := DefaultCameraOptions()
	if opts.FocusPadding != def.FocusPadding || opts.OverviewPadding != def.OverviewPadding ||
		opts.MinZoom != def.MinZoom || opts.MaxZoom != def.MaxZoom || opts.Duration != def.Duration {
		t.Errorf("CameraOptions = %+v", opts)
	}
	if cfg.RevertDuration != 0.3 || cfg.DragAlpha != 0.5 || cfg.TrashAlpha != 0.3 {
		t.Errorf("drag settings = %v %v %v", cfg.RevertDuration, cfg.DragAlpha, cfg.TrashAlpha)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"radius", func(c *Config) { c.HexRadius = 0 }, "hex radius"},
		{"gap", func(c *Config) { c.HexGap = -1 }, "hex gap"},
		{"square", func(c *Config) { c.SquareSize = -5 }, "square size"},
		{"proximity", func(c *Config) { c.ProximityFactor = 0 }, "proximity factor"},
		{"extent", func(c *Config) { c.Extent = -1 }, "extent"},
		{"viewport", func(c *Config) { c.ViewportWidth = -1 }, "viewport"},
		{"zoom", func(c *Config) { c.MinZoom, c.MaxZoom = 3, 2 }, "zoom range"},
		{"duration", func(c *Config) { c.CameraDuration = 0 }, "durations"},
		{"dead zone", func(c *Config) { c.DragDeadZone = -2 }, "dead zone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestConfig_ValidateReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HexRadius = 0
	cfg.SquareSize = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "invalid config: ") || !strings.Contains(msg, "hex radius") || !strings.Contains(msg, "square size") {
		t.Errorf("err = %q", msg)
	}
}
