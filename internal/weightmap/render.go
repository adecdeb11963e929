// Package weightmap renders the weights of a single influence as a
// grayscale preview image: vertices laid out row-major in a square grid,
// weight mapped to luminance. Riggers use these maps to eyeball a
// transfer before applying it.
package weightmap

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"scw-transfer/internal/scw"
)

// Render builds the weight map for one influence of a decoded weight
// file. Each vertex becomes a cellSize×cellSize block; with supersample
// > 1 the map is rendered larger and downsampled with CatmullRom
// filtering for smoother block edges.
func Render(doc *scw.Document, influence string, cellSize, supersample int) (*image.NRGBA, error) {
	index := -1
	for i, name := range doc.Header.Influences {
		if name == influence {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("weightmap: influence %s not in %s: %w", influence, doc.Header.Target, scw.ErrNameMismatch)
	}

	vertexCount := doc.MaxVertex() + 1
	if vertexCount == 0 {
		return nil, fmt.Errorf("weightmap: %s holds no weight records", doc.Header.Target)
	}

	weights := make([]float64, vertexCount)
	for _, rec := range doc.Records {
		if rec.Index == index {
			weights[rec.Vertex] = rec.Weight
		}
	}

	if cellSize <= 0 {
		cellSize = 8
	}
	if supersample < 1 {
		supersample = 1
	}

	grid := int(math.Ceil(math.Sqrt(float64(vertexCount))))
	cell := cellSize * supersample
	size := grid * cell

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for v := 0; v < grid*grid; v++ {
		var lum uint8
		if v < vertexCount {
			w := weights[v]
			if w < 0 {
				w = 0
			} else if w > 1 {
				w = 1
			}
			lum = uint8(w*255 + 0.5)
		}
		cx := (v % grid) * cell
		cy := (v / grid) * cell
		fill(img, cx, cy, cell, color.NRGBA{R: lum, G: lum, B: lum, A: 255})
	}

	if supersample > 1 {
		img = downsample(img, grid*cellSize)
	}
	return img, nil
}

func fill(img *image.NRGBA, x0, y0, size int, c color.NRGBA) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// downsample reduces the map to targetSize with CatmullRom filtering.
// Alpha is opaque everywhere, so no premultiply pass is needed.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save writes the map in the format chosen by the path extension:
// .webp or .tga.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightmap: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext := filepath.Ext(path); ext {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("weightmap: encode %s: %w", path, err)
		}
	case ".tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("weightmap: encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("weightmap: unsupported output format %q (want .webp or .tga)", ext)
	}
	return nil
}
