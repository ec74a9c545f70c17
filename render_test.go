package hilbert

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/vector"
)

// debugCell is the size of a grid cell in debug images, in pixels.
const debugCell = 8

// drawScan renders the path through pts on top of the given tiles.
// Row 0 of the grid is at the bottom of the image.
func drawScan(pts []Point[uint32], w, h uint32, tiles []Tile[uint32]) *image.RGBA {
	W, H := int(w)*debugCell, int(h)*debugCell
	img := image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	shades := []color.Gray{{Y: 0xE0}, {Y: 0xF0}}
	for i, t := range tiles {
		r := image.Rect(
			int(t.X)*debugCell, H-int(t.Y+t.Height)*debugCell,
			int(t.X+t.Width)*debugCell, H-int(t.Y)*debugCell)
		draw.Draw(img, r, image.NewUniform(shades[i%2]), image.Point{}, draw.Src)
	}

	r := vector.NewRasterizer(W, H)
	for i := 1; i < len(pts); i++ {
		addSegment(r, pts[i-1], pts[i], W, H)
	}
	r.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return img
}

// addSegment adds a line of width 2 pixels between two cell centres.
func addSegment(r *vector.Rasterizer, p, q Point[uint32], W, H int) {
	clamp := func(v float32, hi int) float32 {
		return min(max(v, 0), float32(hi))
	}
	x0 := float32(min(p.X, q.X))*debugCell + debugCell/2 - 1
	x1 := float32(max(p.X, q.X))*debugCell + debugCell/2 + 1
	y0 := float32(H) - float32(max(p.Y, q.Y))*debugCell - debugCell/2 - 1
	y1 := float32(H) - float32(min(p.Y, q.Y))*debugCell - debugCell/2 + 1
	x0, x1 = clamp(x0, W), clamp(x1, W)
	y0, y1 = clamp(y0, H), clamp(y1, H)

	r.MoveTo(x0, y0)
	r.LineTo(x0, y1)
	r.LineTo(x1, y1)
	r.LineTo(x1, y0)
	r.ClosePath()
}

// writeDebugImage saves a picture of a failed scan to debug/<name>.png.
func writeDebugImage(name string, pts []Point[uint32], w, h uint32, tiles []Tile[uint32]) {
	os.MkdirAll("debug", 0755)

	img := drawScan(pts, w, h, tiles)
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func TestDrawScan(t *testing.T) {
	const w, h = 4, 3
	pts, err := Collect(NewScan[uint32](w, h, Horizontal))
	if err != nil {
		t.Fatal(err)
	}
	img := drawScan(pts, w, h, nil)

	H := h * debugCell
	for _, p := range pts {
		px := int(p.X)*debugCell + debugCell/2
		py := H - int(p.Y)*debugCell - debugCell/2
		if c := img.RGBAAt(px, py); c.R != 0 {
			t.Errorf("cell %v not covered, pixel (%d,%d) is %v", p, px, py, c)
		}
	}
	if c := img.RGBAAt(0, 0); c.R != 0xFF {
		t.Errorf("background pixel is %v", c)
	}
}
