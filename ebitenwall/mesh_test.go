package ebitenwall

import (
	"image/color"
	"math"
	"testing"

	"github.com/phanxgames/tilewall"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestPolygonFan_Hexagon(t *testing.T) {
	pts := tilewall.HexCorners(tilewall.Vec2{}, 10)
	verts, inds := polygonFan(pts, [6]float64{1, 0, 0, 1, 0, 0}, color.RGBA{R: 255, A: 255}, 1)
	if len(verts) != 6 {
		t.Fatalf("verts = %d, want 6", len(verts))
	}
	if len(inds) != 12 {
		t.Fatalf("indices = %d, want 12", len(inds))
	}
	for i := 0; i < 4; i++ {
		if inds[i*3] != 0 {
			t.Errorf("triangle %d hub = %d, want 0", i, inds[i*3])
		}
		if inds[i*3+1] != uint16(i+1) || inds[i*3+2] != uint16(i+2) {
			t.Errorf("triangle %d = %v", i, inds[i*3:i*3+3])
		}
	}
	for i, v := range verts {
		if v.SrcX != 0.5 || v.SrcY != 0.5 {
			t.Errorf("vert %d src = (%v, %v), want white pixel center", i, v.SrcX, v.SrcY)
		}
	}
}

func TestPolygonFan_AppliesView(t *testing.T) {
	pts := []tilewall.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	view := [6]float64{2, 0, 0, 2, 100, 50}
	verts, _ := polygonFan(pts, view, color.RGBA{A: 255}, 1)
	want := [][2]float64{{100, 50}, {120, 50}, {120, 70}}
	for i, w := range want {
		if !approxEqual(float64(verts[i].DstX), w[0], 1e-4) || !approxEqual(float64(verts[i].DstY), w[1], 1e-4) {
			t.Errorf("vert %d = (%v, %v), want %v", i, verts[i].DstX, verts[i].DstY, w)
		}
	}
}

func TestPolygonFan_PremultipliesAlpha(t *testing.T) {
	pts := []tilewall.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	verts, _ := polygonFan(pts, [6]float64{1, 0, 0, 1, 0, 0}, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0.5)
	v := verts[0]
	if !approxEqual(float64(v.ColorA), 0.5, 1e-6) || !approxEqual(float64(v.ColorR), 0.5, 1e-6) {
		t.Errorf("color = (%v, %v, %v, %v), want premultiplied 0.5", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestPolygonFan_Degenerate(t *testing.T) {
	verts, inds := polygonFan([]tilewall.Vec2{{}, {X: 1}}, [6]float64{1, 0, 0, 1, 0, 0}, color.RGBA{}, 1)
	if verts != nil || inds != nil {
		t.Error("expected nil for fewer than 3 points")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff8000", color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{"00ff00", color.RGBA{G: 0xff, A: 0xff}, false},
		{"#abc", color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentColor(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	if got := contentColor(tilewall.EmptyContent, fallback); got != fallback {
		t.Errorf("empty content = %v, want fallback", got)
	}
	if got := contentColor(tilewall.Content{Kind: "color", Data: 42}, fallback); got != fallback {
		t.Errorf("non-string data = %v, want fallback", got)
	}
	got := contentColor(tilewall.Content{Kind: "color", Data: "#102030"}, fallback)
	if got != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("color content = %v", got)
	}
}

func TestGhostOutline(t *testing.T) {
	l := tilewall.DefaultLayout()
	hex := ghostOutline(l, tilewall.GhostCandidate{Cell: tilewall.HexCell(0, 0)}, 1)
	if len(hex) != 6 {
		t.Errorf("hex outline points = %d, want 6", len(hex))
	}
	sq := ghostOutline(l, tilewall.GhostCandidate{Cell: tilewall.SquareCell(1, 0), Pos: tilewall.Vec2{X: 120}}, 1)
	if len(sq) != 4 {
		t.Fatalf("square outline points = %d, want 4", len(sq))
	}
	if !approxEqual(sq[2].X-sq[0].X, 114, 1e-9) {
		t.Errorf("square width = %v, want 114", sq[2].X-sq[0].X)
	}
}

func TestWithAlpha(t *testing.T) {
	got := withAlpha(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if got.A != 127 || got.R != 100 {
		t.Errorf("withAlpha = %v", got)
	}
}
