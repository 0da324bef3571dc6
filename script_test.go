package tilewall

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func runScript(t *testing.T, h *engineHarness, src string) *ScriptRunner {
	t.Helper()
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	h.eng.SetScript(r)
	for i := 0; i < 300 && !r.Done(); i++ {
		h.eng.Update(1.0 / 60)
	}
	if !r.Done() {
		t.Fatal("script did not finish")
	}
	return r
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad json", `{"steps": [`, "parse script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"bad shape", `{"steps": [{"action": "shape", "shape": "star"}]}`, "step 0"},
		{"empty resize", `{"steps": [{"action": "add"}, {"action": "resize", "width": 640}]}`, "step 1: resize"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
	_, err := LoadScript([]byte(`{"steps": [{"action": "shape", "shape": "star"}]}`))
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("bad shape err = %v, want ErrUnknownShape", err)
	}
}

func TestScript_BuildsWall(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 0)
	r := runScript(t, h, `{"steps": [
		{"action": "add"},
		{"action": "add"},
		{"action": "add", "cell": [0, 1]},
		{"action": "wait", "frames": 3},
		{"action": "shape", "shape": "square"},
		{"action": "add"}
	]}`)
	if len(r.Errors()) != 0 {
		t.Errorf("errors = %v", r.Errors())
	}
	if h.store.Shape() != ShapeSquare {
		t.Errorf("shape = %v", h.store.Shape())
	}
	if h.store.Len() != 4 {
		t.Fatalf("tiles = %d, want 4", h.store.Len())
	}
	if h.cell(3) != HexCell(0, 1) {
		t.Errorf("tile 3 at %v, want hex(0,1)", h.cell(3))
	}
	if h.cell(4) != Origin(FamilyCartesian) {
		t.Errorf("tile 4 at %v, want the square origin", h.cell(4))
	}
}

func TestScript_RecordsAddErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extent = 1
	h := newHarness(t, cfg, 0)
	r := runScript(t, h, `{"steps": [{"action": "add"}, {"action": "ring"}, {"action": "add"}]}`)
	if h.store.Len() != 7 {
		t.Errorf("tiles = %d, want 7", h.store.Len())
	}
	if len(r.Errors()) != 1 || !errors.Is(r.Errors()[0], ErrNoSpaceFound) {
		t.Errorf("errors = %v", r.Errors())
	}
}

func TestScript_DragWaitsForInput(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 2)
	h.settle(120)
	fx, fy := h.screenOf(HexCell(1, 0))
	tx, ty := h.screenOf(HexCell(1, -1))
	src := `{"steps": [{"action": "drag", "fromX": ` + ftoa(fx) + `, "fromY": ` + ftoa(fy) +
		`, "toX": ` + ftoa(tx) + `, "toY": ` + ftoa(ty) + `, "frames": 6}]}`
	runScript(t, h, src)
	if h.eng.Injecting() {
		t.Error("script finished with input pending")
	}
	if h.cell(2) != HexCell(1, -1) {
		t.Errorf("tile 2 at %v", h.cell(2))
	}
}

func TestScript_ClickAndOverview(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 2)
	h.settle(120)
	sx, sy := h.screenOf(HexCell(0, 0))
	src := `{"steps": [{"action": "click", "x": ` + ftoa(sx) + `, "y": ` + ftoa(sy) + `}]}`
	runScript(t, h, src)
	if v := h.store.View(); v.Mode != ViewFocused || v.Focused != 1 {
		t.Fatalf("view = %+v", v)
	}
	runScript(t, h, `{"steps": [{"action": "overview"}]}`)
	if h.store.View().Mode != ViewOverview {
		t.Error("overview step ignored")
	}
}

func TestScript_RemoveFocusResize(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 3)
	h.settle(120)
	r := runScript(t, h, `{"steps": [
		{"action": "focus", "tile": 2},
		{"action": "resize", "width": 1024, "height": 768},
		{"action": "remove", "tile": 3},
		{"action": "remove", "tile": 42},
		{"action": "focus", "tile": 42}
	]}`)
	if v := h.store.View(); v.Mode != ViewFocused || v.Focused != 2 {
		t.Errorf("view = %+v, want focus on 2", v)
	}
	if vp := h.eng.Camera().Viewport; vp.Width != 1024 || vp.Height != 768 {
		t.Errorf("viewport = %+v", vp)
	}
	if _, ok := h.store.Tile(3); ok || h.store.Len() != 2 {
		t.Errorf("tile 3 not removed, %d tiles left", h.store.Len())
	}
	errs := r.Errors()
	if len(errs) != 2 || !errors.Is(errs[0], ErrUnknownTile) || !errors.Is(errs[1], ErrUnknownTile) {
		t.Errorf("errors = %v, want two ErrUnknownTile", errs)
	}
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
