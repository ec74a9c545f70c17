package hilbert

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var benchSizes = [][2]uint32{{64, 64}, {1000, 1000}, {1920, 1080}, {4000, 50}}

// BenchmarkScan measures the base generator.
func BenchmarkScan(b *testing.B) {
	for _, size := range benchSizes {
		w, h := size[0], size[1]
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				s := NewScan(w, h, Horizontal)
				for range s.All() {
				}
			}
		})
	}
}

// BenchmarkTiledScan measures the generator with aspect-bounded tiles.
func BenchmarkTiledScan(b *testing.B) {
	for _, size := range benchSizes {
		w, h := size[0], size[1]
		b.Run(fmt.Sprintf("%dx%d", w, h), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				s := NewTiledScan(w, h)
				for range s.All() {
				}
			}
		})
	}
}

// BenchmarkWalk compares reading an image in scan order with reading it
// row by row.  The image is filled using x/image/vector.
func BenchmarkWalk(b *testing.B) {
	const size = 2048
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	r := vector.NewRasterizer(size, size)
	r.MoveTo(0, 0)
	r.LineTo(size, size/3)
	r.LineTo(size/4, size)
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})

	order, err := Collect(NewTiledScan[uint32](size, size))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("rows", func(b *testing.B) {
		var sum int
		for b.Loop() {
			for y := range size {
				row := img.Pix[y*img.Stride:]
				for x := range size {
					sum += int(row[x])
				}
			}
		}
		_ = sum
	})

	b.Run("hilbert", func(b *testing.B) {
		var sum int
		for b.Loop() {
			for _, p := range order {
				sum += int(img.Pix[int(p.Y)*img.Stride+int(p.X)])
			}
		}
		_ = sum
	})
}
