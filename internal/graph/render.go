package graph

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Plot colors.
var (
	background  = color.NRGBA{255, 255, 255, 255}
	edgeColor   = color.NRGBA{23, 102, 140, 255}
	vertexColor = color.NRGBA{222, 27, 27, 255}
)

// vertexRadius is the dot radius in output pixels.
const vertexRadius = 3.5

// frameBuffer holds the raster target as a flat RGBA slice.
type frameBuffer struct {
	width  int
	height int
	pix    []uint8 // RGBA interleaved, len = W*H*4
}

func newFrameBuffer(w, h int, bg color.NRGBA) *frameBuffer {
	fb := &frameBuffer{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*4),
	}
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i] = bg.R
		fb.pix[i+1] = bg.G
		fb.pix[i+2] = bg.B
		fb.pix[i+3] = bg.A
	}
	return fb
}

func (fb *frameBuffer) set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	i := (y*fb.width + x) * 4
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
	fb.pix[i+3] = c.A
}

// line steps one pixel at a time along the longer axis.
func (fb *frameBuffer) line(x0, y0, x1, y1 float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fb.set(int(x0+dx*t+0.5), int(y0+dy*t+0.5), c)
	}
}

func (fb *frameBuffer) disc(cx, cy, r float64, c color.NRGBA) {
	for y := int(cy - r); y <= int(cy+r+1); y++ {
		for x := int(cx - r); x <= int(cx+r+1); x++ {
			ddx := float64(x) - cx
			ddy := float64(y) - cy
			if ddx*ddx+ddy*ddy <= r*r {
				fb.set(x, y, c)
			}
		}
	}
}

func (fb *frameBuffer) toNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.pix)
	return img
}

// Render rasterizes the graph at supersample times the target
// resolution, draws edges under vertices, then downsamples to
// width x height.
func Render(g *Graph, pos map[Vertex]Point, width, height, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	ss := float64(supersample)
	fb := newFrameBuffer(width*supersample, height*supersample, background)

	for e := range g.Edges {
		from, to := pos[e.From], pos[e.To]
		fb.line(from.X*ss, from.Y*ss, to.X*ss, to.Y*ss, edgeColor)
	}
	for v := range g.Vertices {
		p := pos[v]
		fb.disc(p.X*ss, p.Y*ss, vertexRadius*ss, vertexColor)
	}

	img := fb.toNRGBA()
	if supersample == 1 {
		return img
	}
	return downsample(img, width, height)
}

// downsample scales with CatmullRom filtering. The plot is fully
// opaque, so no premultiply round trip is needed.
func downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
