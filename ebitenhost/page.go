package ebitenhost

import (
	"fmt"
	"math"

	"github.com/phanxgames/reveal"
)

// TextAlign controls horizontal text alignment within a Block.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// Block is one painted rectangle of a page, optionally with a line of text.
type Block struct {
	// Name is unique within the page.
	Name string
	// Parent names an earlier block whose translation and opacity this block
	// inherits. Empty for top-level blocks.
	Parent string
	// Node is the animator node driving this block. Empty for static blocks.
	Node reveal.NodeID
	// Bounds is the resting layout box in page coordinates.
	Bounds reveal.Rect

	Fill Color
	// Stroke outlines the block's scaled box when Stroke.A > 0.
	Stroke      Color
	StrokeWidth float64

	Text      string
	TextSize  float64
	TextColor Color
	Align     TextAlign

	// Interactive blocks receive hover and press variants from the pointer.
	Interactive bool
}

// Page is an ordered list of blocks. Later blocks paint over earlier ones.
type Page struct {
	Width, Height float64

	blocks []Block
	index  map[string]int
	parent []int
}

// NewPage validates blocks and builds a page. Names must be unique and a
// parent must appear before its children.
func NewPage(width, height float64, blocks []Block) (*Page, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ebitenhost: page size must be positive, got %vx%v", width, height)
	}
	p := &Page{
		Width:  width,
		Height: height,
		blocks: blocks,
		index:  make(map[string]int, len(blocks)),
		parent: make([]int, len(blocks)),
	}
	for i, b := range blocks {
		if b.Name == "" {
			return nil, fmt.Errorf("ebitenhost: block %d has no name", i)
		}
		if _, dup := p.index[b.Name]; dup {
			return nil, fmt.Errorf("ebitenhost: duplicate block %q", b.Name)
		}
		p.parent[i] = -1
		if b.Parent != "" {
			pi, ok := p.index[b.Parent]
			if !ok {
				return nil, fmt.Errorf("ebitenhost: block %q: parent %q must come first", b.Name, b.Parent)
			}
			p.parent[i] = pi
		}
		p.index[b.Name] = i
	}
	return p, nil
}

// Blocks returns the block list. The returned slice MUST NOT be mutated.
func (p *Page) Blocks() []Block {
	return p.blocks
}

// Block returns the named block.
func (p *Page) Block(name string) (Block, bool) {
	i, ok := p.index[name]
	if !ok {
		return Block{}, false
	}
	return p.blocks[i], true
}

// Measure returns a reveal.MeasureFunc reporting the named block's resting
// layout box. Entrance offsets are ignored so a block that slides in from
// below is measured where it will land.
func (p *Page) Measure(name string) reveal.MeasureFunc {
	return func() (reveal.Rect, bool) {
		b, ok := p.Block(name)
		if !ok {
			return reveal.Rect{}, false
		}
		return b.Bounds, true
	}
}

// PropsSource resolves a node's current props; *reveal.Animator satisfies it.
type PropsSource interface {
	Props(id reveal.NodeID) (reveal.Props, error)
}

// placed is a block resolved for one frame: final box, transform and alpha.
type placed struct {
	block    *Block
	bounds   reveal.Rect // translated, unscaled box
	scale    float64
	rotation float64 // degrees
	alpha    float64
}

// place resolves every block against the animator. Translation and opacity
// accumulate down the parent chain; scale and rotation apply to the block
// alone, around its center.
func (p *Page) place(src PropsSource, out []placed) []placed {
	out = out[:0]
	for i := range p.blocks {
		b := &p.blocks[i]
		props := reveal.Identity
		if b.Node != "" {
			if v, err := src.Props(b.Node); err == nil {
				props = v
			}
		}
		pl := placed{
			block:    b,
			bounds:   b.Bounds,
			scale:    props.Scale,
			rotation: props.Rotation,
			alpha:    clamp01(props.Opacity),
		}
		pl.bounds.X += props.X
		pl.bounds.Y += props.Y
		if pi := p.parent[i]; pi >= 0 {
			par := out[pi]
			pl.bounds.X += par.bounds.X - p.blocks[pi].Bounds.X
			pl.bounds.Y += par.bounds.Y - p.blocks[pi].Bounds.Y
			pl.alpha *= par.alpha
		}
		out = append(out, pl)
	}
	return out
}

// visualBounds returns the axis-aligned box after scaling about the center.
// Rotation is ignored; hit testing uses the unrotated box.
func (pl *placed) visualBounds() reveal.Rect {
	s := math.Abs(pl.scale)
	r := pl.bounds
	cx, cy := r.X+r.Width/2, r.Y+r.Height/2
	w, h := r.Width*s, r.Height*s
	return reveal.Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// hitTest returns the index of the top-most interactive, visible block
// containing the page point (x, y), or -1.
func hitTest(blocks []placed, x, y float64) int {
	for i := len(blocks) - 1; i >= 0; i-- {
		pl := &blocks[i]
		if !pl.block.Interactive || pl.block.Node == "" || pl.alpha <= 0 {
			continue
		}
		if pl.visualBounds().Contains(x, y) {
			return i
		}
	}
	return -1
}
