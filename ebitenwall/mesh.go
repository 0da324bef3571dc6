package ebitenwall

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tilewall"
)

// --- White pixel singleton (single-threaded, like the engine) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source of untextured polygons.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// polygonFan triangulates a convex world-space polygon into screen-space
// vertices through the view matrix. Colors are premultiplied by alpha.
// Returns nil for fewer than 3 points.
func polygonFan(points []tilewall.Vec2, view [6]float64, c color.RGBA, alpha float64) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	a := float32(alpha) * float32(c.A) / 255
	r := float32(c.R) / 255 * a
	g := float32(c.G) / 255 * a
	b := float32(c.B) / 255 * a

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(view[0]*p.X + view[2]*p.Y + view[4])
		v.DstY = float32(view[1]*p.X + view[3]*p.Y + view[5])
		// Center of the white pixel.
		v.SrcX = 0.5
		v.SrcY = 0.5
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}
	return verts, inds
}

// drawPolygon fills a convex world-space polygon on dst.
func drawPolygon(dst *ebiten.Image, points []tilewall.Vec2, view [6]float64, c color.RGBA, alpha float64) {
	verts, inds := polygonFan(points, view, c, alpha)
	if verts == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}
