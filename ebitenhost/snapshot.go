package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/backdrop"
)

// Snapshot queues a labeled capture of the canvas, taken at the end of the
// next Draw. Safe to call from Update or Draw.
func (g *Game) Snapshot(label string) {
	g.snapshotQueue = append(g.snapshotQueue, label)
}

// flushSnapshots writes a PNG for every queued label. Pixels can only be read
// while the game loop runs, so this is called from Draw.
func (g *Game) flushSnapshots() {
	if len(g.snapshotQueue) == 0 {
		return
	}
	img := toNRGBA(g.canvas.Image())
	for _, label := range g.snapshotQueue {
		if _, err := backdrop.WriteSnapshot(g.cfg.SnapshotDir, label, img); err != nil {
			backdrop.Logger().Warn("snapshot failed", zap.String("label", label), zap.Error(err))
		}
	}
	g.snapshotQueue = g.snapshotQueue[:0]
}

// toNRGBA reads src and converts its premultiplied pixels to straight alpha.
func toNRGBA(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
