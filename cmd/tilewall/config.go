package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/phanxgames/tilewall"
)

const envPrefix = "TILEWALL_"

// settings is what the binary needs beyond the engine config.
type settings struct {
	Config tilewall.Config
	Shape  tilewall.Shape
	Tiles  int
}

// loadEnv reads TILEWALL_* variables from path (when it exists) and from the
// process environment. The process environment wins.
func loadEnv(path string) (map[string]string, error) {
	env := map[string]string{}
	if path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileEnv {
			if strings.HasPrefix(k, envPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// applyEnv overlays env onto s.
func applyEnv(s *settings, env map[string]string) error {
	floats := map[string]*float64{
		"HEX_RADIUS":  &s.Config.HexRadius,
		"HEX_GAP":     &s.Config.HexGap,
		"SQUARE_SIZE": &s.Config.SquareSize,
		"WIDTH":       &s.Config.ViewportWidth,
		"HEIGHT":      &s.Config.ViewportHeight,
		"MIN_ZOOM":    &s.Config.MinZoom,
		"MAX_ZOOM":    &s.Config.MaxZoom,
	}
	for name, dst := range floats {
		v, ok := env[envPrefix+name]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = f
	}

	ints := map[string]*int{
		"EXTENT": &s.Config.Extent,
		"TILES":  &s.Tiles,
	}
	for name, dst := range ints {
		v, ok := env[envPrefix+name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}

	if v, ok := env[envPrefix+"SHAPE"]; ok {
		shape, err := tilewall.ParseShape(v)
		if err != nil {
			return fmt.Errorf("%sSHAPE: %w", envPrefix, err)
		}
		s.Shape = shape
	}
	if v, ok := env[envPrefix+"LANG"]; ok {
		s.Config.Language = v
	}
	if v, ok := env[envPrefix+"DEBUG"]; ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
		s.Config.Debug = on
	}
	if v, ok := env[envPrefix+"TRASH"]; ok {
		r, err := parseRect(v)
		if err != nil {
			return fmt.Errorf("%sTRASH: %w", envPrefix, err)
		}
		s.Config.TrashZone = r
	}
	return nil
}

// parseRect parses "x,y,w,h".
func parseRect(v string) (tilewall.Rect, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return tilewall.Rect{}, fmt.Errorf("rect %q: want x,y,w,h", v)
	}
	var f [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return tilewall.Rect{}, fmt.Errorf("rect %q: %w", v, err)
		}
		f[i] = n
	}
	return tilewall.Rect{X: f[0], Y: f[1], Width: f[2], Height: f[3]}, nil
}
