package ebitenwall

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tilewall"
)

// Capturer writes labeled PNG captures of the screen. Labels queued during
// a frame are written after that frame is drawn.
type Capturer struct {
	// Dir is created on first capture. Defaults to "screenshots".
	Dir string

	log   *tilewall.Logger
	queue []string
	now   func() time.Time
}

// NewCapturer creates a capturer logging through log.
func NewCapturer(log *tilewall.Logger) *Capturer {
	return &Capturer{Dir: "screenshots", log: log.With("Capture"), now: time.Now}
}

// Queue asks for a capture of the next drawn frame.
func (c *Capturer) Queue(label string) {
	c.queue = append(c.queue, label)
}

// Pending returns the number of queued captures.
func (c *Capturer) Pending() int { return len(c.queue) }

// Flush writes one file per queued label from screen and clears the queue.
func (c *Capturer) Flush(screen *ebiten.Image) {
	if len(c.queue) == 0 {
		return
	}
	labels := c.queue
	c.queue = c.queue[:0]

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		c.log.Error("create capture dir", "dir", c.Dir, "err", err)
		return
	}
	b := screen.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pix)
	img := unpremultiply(pix, b.Dx(), b.Dy())

	stamp := c.now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(c.Dir, stamp+"_"+fileLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			c.log.Error("capture failed", "err", err)
			continue
		}
		c.log.Success("captured", "path", path)
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight alpha.
func unpremultiply(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pix) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// fileLabel keeps letters, digits, '-' and '.', replacing everything else
// with '_'. Blank labels become "wall".
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "wall"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
