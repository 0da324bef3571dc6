package tilewall

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
//
//	add      place a tile; Cell is optional ([x, y] on the active grid)
//	ring     fill every free cell around the wall
//	shape    switch to Shape ("hex", "square", "circle")
//	click    click at screen X, Y
//	dblclick double-click at screen X, Y
//	drag     drag from FromX, FromY to ToX, ToY over Frames frames
//	remove   delete tile Tile
//	focus    focus the camera on tile Tile
//	overview return the camera to overview
//	resize   set the viewport to Width x Height
//	wait     do nothing for Frames frames
type scriptStep struct {
	Action string  `json:"action"`
	Cell   *[2]int `json:"cell,omitempty"`
	Shape  string  `json:"shape,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Tile   TileID  `json:"tile,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"add": true, "ring": true, "shape": true, "click": true, "dblclick": true,
	"drag": true, "remove": true, "focus": true, "overview": true,
	"resize": true, "wait": true,
}

// ScriptRunner replays a JSON action script one step per frame, for demos
// and headless runs. Attach it with Engine.SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON script of the form {"steps": [...]}.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "resize" && (st.Width <= 0 || st.Height <= 0) {
			return nil, fmt.Errorf("parse script: step %d: resize needs a positive width and height", i)
		}
		if st.Action == "shape" {
			if _, err := ParseShape(st.Shape); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run and its input has drained.
func (r *ScriptRunner) Done() bool { return r.done }

// Errors returns the errors raised by add, remove and focus steps.
func (r *ScriptRunner) Errors() []error { return r.errs }

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	if e.Injecting() {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "add":
		var at *Cell
		if st.Cell != nil {
			c := Cell{Family: e.store.Shape().Family(), X: st.Cell[0], Y: st.Cell[1]}
			at = &c
		}
		if _, err := e.AddTile(at); err != nil {
			r.errs = append(r.errs, err)
		}
	case "ring":
		e.AddRingAround()
	case "shape":
		s, _ := ParseShape(st.Shape)
		e.SetShape(s)
	case "click":
		e.InjectClick(st.X, st.Y)
	case "dblclick":
		e.InjectClick(st.X, st.Y)
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "remove":
		if err := e.RemoveTile(st.Tile); err != nil {
			r.errs = append(r.errs, err)
		}
	case "focus":
		if err := e.store.SetFocus(st.Tile); err != nil {
			r.errs = append(r.errs, err)
		}
	case "overview":
		e.store.SetOverview()
	case "resize":
		e.Resize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !e.Injecting() {
		r.done = true
	}
}
