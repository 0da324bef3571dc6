package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"

	"github.com/phanxgames/tilewall"
)

func TestApplyEnv(t *testing.T) {
	env, err := godotenv.Unmarshal(`
TILEWALL_SHAPE=square
TILEWALL_EXTENT=3
TILEWALL_HEX_RADIUS=60
TILEWALL_LANG=fa
TILEWALL_DEBUG=true
TILEWALL_TRASH=10,20,100,50
`)
	if err != nil {
		t.Fatal(err)
	}
	s := settings{Config: tilewall.DefaultConfig()}
	if err := applyEnv(&s, env); err != nil {
		t.Fatal(err)
	}
	if s.Shape != tilewall.ShapeSquare {
		t.Errorf("Shape = %v, want square", s.Shape)
	}
	if s.Config.Extent != 3 {
		t.Errorf("Extent = %d, want 3", s.Config.Extent)
	}
	if s.Config.HexRadius != 60 {
		t.Errorf("HexRadius = %v, want 60", s.Config.HexRadius)
	}
	if s.Config.Language != "fa" || !s.Config.Debug {
		t.Errorf("Language = %q, Debug = %v", s.Config.Language, s.Config.Debug)
	}
	if s.Config.TrashZone != (tilewall.Rect{X: 10, Y: 20, Width: 100, Height: 50}) {
		t.Errorf("TrashZone = %+v", s.Config.TrashZone)
	}
}

func TestApplyEnv_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad float", map[string]string{"TILEWALL_HEX_GAP": "wide"}},
		{"bad int", map[string]string{"TILEWALL_EXTENT": "3.5"}},
		{"bad shape", map[string]string{"TILEWALL_SHAPE": "triangle"}},
		{"bad bool", map[string]string{"TILEWALL_DEBUG": "maybe"}},
		{"bad rect", map[string]string{"TILEWALL_TRASH": "1,2,3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := settings{Config: tilewall.DefaultConfig()}
			if err := applyEnv(&s, tt.env); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnv_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "TILEWALL_TILES=12\nOTHER_KEY=ignored\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	env, err := loadEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if env["TILEWALL_TILES"] != "12" {
		t.Errorf("TILEWALL_TILES = %q, want 12", env["TILEWALL_TILES"])
	}
	if _, ok := env["OTHER_KEY"]; ok {
		t.Error("non-prefixed key leaked into env")
	}
}

func TestLoadEnv_ProcessWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TILEWALL_LANG=en\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TILEWALL_LANG", "fa")
	env, err := loadEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if env["TILEWALL_LANG"] != "fa" {
		t.Errorf("TILEWALL_LANG = %q, want fa", env["TILEWALL_LANG"])
	}
}

func TestLoadEnv_MissingFile(t *testing.T) {
	if _, err := loadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestRun_Headless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	script := `{"steps": [{"action": "add"}, {"action": "ring"}, {"action": "wait", "frames": 5}]}`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}
	args := []string{"-env", "", "-tiles", "1", "-script", path, "-headless"}
	if err := run(args); err != nil {
		t.Fatal(err)
	}
}

func TestRun_HeadlessNeedsScript(t *testing.T) {
	if err := run([]string{"-env", "", "-headless"}); err == nil {
		t.Error("expected error without -script")
	}
}
