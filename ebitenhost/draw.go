package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultTextSize is used for blocks whose TextSize is zero.
const defaultTextSize = 16

// painter draws placed blocks. Rectangles are a scaled 1x1 white pixel;
// text is rendered with the Go Regular face at the block's size.
type painter struct {
	pixel  *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newPainter() (*painter, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse Go Regular: %w", err)
	}
	return &painter{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (p *painter) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = defaultTextSize
	}
	f, ok := p.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: p.source, Size: size}
		p.faces[size] = f
	}
	return f
}

func (p *painter) whitePixel() *ebiten.Image {
	if p.pixel == nil {
		p.pixel = ebiten.NewImage(1, 1)
		p.pixel.Fill(color.White)
	}
	return p.pixel
}

// blockGeoM maps a unit square (or a w x h local box) to the screen: scale
// and rotate about the block center, then translate by its placed position
// minus the scroll offset.
func blockGeoM(pl *placed, w, h, scrollY float64) ebiten.GeoM {
	r := pl.bounds
	var m ebiten.GeoM
	m.Translate(-w/2, -h/2)
	m.Scale(pl.scale, pl.scale)
	if pl.rotation != 0 {
		m.Rotate(pl.rotation * math.Pi / 180)
	}
	m.Translate(r.X+r.Width/2, r.Y+r.Height/2-scrollY)
	return m
}

// draw paints every placed block that intersects the visible band.
func (p *painter) draw(screen *ebiten.Image, blocks []placed, scrollY, viewH float64) {
	for i := range blocks {
		pl := &blocks[i]
		if pl.alpha <= 0 || pl.scale == 0 {
			continue
		}
		vb := pl.visualBounds()
		// Rotation can swing corners out by up to half the diagonal.
		pad := math.Hypot(vb.Width, vb.Height) / 2
		if vb.Y+vb.Height+pad < scrollY || vb.Y-pad > scrollY+viewH {
			continue
		}
		b := pl.block
		if b.Fill.A > 0 && b.Bounds.Width > 0 && b.Bounds.Height > 0 {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(b.Bounds.Width, b.Bounds.Height)
			m := blockGeoM(pl, b.Bounds.Width, b.Bounds.Height, scrollY)
			op.GeoM.Concat(m)
			op.ColorScale.ScaleWithColor(b.Fill.toRGBA())
			op.ColorScale.ScaleAlpha(float32(pl.alpha))
			screen.DrawImage(p.whitePixel(), op)
		}
		if b.Stroke.A > 0 {
			sw := b.StrokeWidth
			if sw <= 0 {
				sw = 1
			}
			c := b.Stroke
			c.A *= pl.alpha
			vector.StrokeRect(screen, float32(vb.X), float32(vb.Y-scrollY), float32(vb.Width), float32(vb.Height),
				float32(sw), c.toRGBA(), true)
		}
		if b.Text != "" {
			p.drawText(screen, pl, scrollY)
		}
	}
}

func (p *painter) drawText(screen *ebiten.Image, pl *placed, scrollY float64) {
	b := pl.block
	f := p.face(b.TextSize)
	m := f.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	tw, th := text.Measure(b.Text, f, lh)

	var x float64
	switch b.Align {
	case TextAlignCenter:
		x = (b.Bounds.Width - tw) / 2
	case TextAlignRight:
		x = b.Bounds.Width - tw
	}
	y := (b.Bounds.Height - th) / 2

	tc := b.TextColor
	if tc == (Color{}) {
		tc = ColorWhite
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(blockGeoM(pl, b.Bounds.Width, b.Bounds.Height, scrollY))
	op.ColorScale.ScaleWithColor(tc.toRGBA())
	op.ColorScale.ScaleAlpha(float32(pl.alpha))
	op.LineSpacing = lh
	text.Draw(screen, b.Text, f, op)
}
