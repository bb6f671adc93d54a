// Package landing declares the MR International Education Centre landing
// page: a hero, seven scroll-revealed sections and a footer, laid out as
// ebitenhost blocks and registered with a reveal.Animator.
package landing

import (
	"fmt"
	"math"

	"github.com/phanxgames/reveal"
	"github.com/phanxgames/reveal/ebitenhost"
)

const (
	heroHeight = 720
	margin     = 40
	maxContent = 1200
	sectionPad = 100
	headingH   = 60
	headingGap = 40
	gridGap    = 30
	cardInset  = 24
	badgeH     = 40
	footerH    = 120
)

// watched is a node that needs Observe once the page exists.
type watched struct {
	id       reveal.NodeID
	viewport bool
}

type builder struct {
	a      *reveal.Animator
	width  float64
	y      float64
	blocks []ebitenhost.Block
	watch  []watched
}

// Build registers every landing page node with a, lays the page out for the
// given window width and observes the top-level nodes. Hero nodes fire on
// the next Tick; everything else waits for the viewport.
func Build(a *reveal.Animator, width float64) (*ebitenhost.Page, error) {
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) {
		return nil, fmt.Errorf("landing: width must be positive, got %v", width)
	}
	b := &builder{a: a, width: width}
	steps := []func() error{b.hero}
	for i := range sections {
		s := &sections[i]
		steps = append(steps, func() error { return b.section(s) })
	}
	steps = append(steps, b.cta, b.footer)
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("landing: %w", err)
		}
	}

	page, err := ebitenhost.NewPage(width, b.y, b.blocks)
	if err != nil {
		return nil, fmt.Errorf("landing: %w", err)
	}
	for _, w := range b.watch {
		var measure reveal.MeasureFunc
		if w.viewport {
			measure = page.Measure(string(w.id))
		}
		if err := a.Observe(w.id, measure); err != nil {
			return nil, fmt.Errorf("landing: observe %s: %w", w.id, err)
		}
	}
	return page, nil
}

// contentBox returns the x offset and width of the centered content column.
func (b *builder) contentBox() (x, w float64) {
	w = math.Min(maxContent, b.width-2*margin)
	return (b.width - w) / 2, w
}

func (b *builder) add(bl ebitenhost.Block) {
	b.blocks = append(b.blocks, bl)
}

// element registers el and, unless it belongs to a group, queues it for
// Observe.
func (b *builder) element(el reveal.Element, trig reveal.Trigger, grouped bool) error {
	if err := b.a.RegisterElement(el, trig); err != nil {
		return err
	}
	if !grouped {
		b.watch = append(b.watch, watched{id: el.ID, viewport: trig.Kind == reveal.TriggerOnViewportEnter})
	}
	return nil
}

func (b *builder) group(g reveal.Group, trig reveal.Trigger) error {
	if err := b.a.RegisterGroup(g, trig); err != nil {
		return err
	}
	b.watch = append(b.watch, watched{id: g.ID, viewport: true})
	return nil
}

func (b *builder) hero() error {
	w := b.width
	b.add(ebitenhost.Block{Name: "hero", Bounds: reveal.Rect{Width: w, Height: heroHeight}, Fill: navy})

	x, cw := b.contentBox()
	copyW := math.Min(560, cw/2)
	artSize := math.Min(320, cw/2-40)
	top := 200.0

	if err := b.element(reveal.Element{ID: "hero.copy", Motion: reveal.FadeLeft}, reveal.OnMount(), false); err != nil {
		return err
	}
	b.add(ebitenhost.Block{Name: "hero.copy", Parent: "hero", Node: "hero.copy",
		Bounds: reveal.Rect{X: x, Y: top, Width: copyW, Height: 280}})
	b.add(ebitenhost.Block{Name: "hero.title", Parent: "hero.copy",
		Bounds: reveal.Rect{X: x, Y: top, Width: copyW, Height: 64},
		Text:   "MR International", TextSize: 48, TextColor: paper})
	b.add(ebitenhost.Block{Name: "hero.highlight", Parent: "hero.copy",
		Bounds: reveal.Rect{X: x, Y: top + 72, Width: 420, Height: 56}, Fill: glass,
		Text: "Education Centre", TextSize: 40, TextColor: paper, Align: ebitenhost.TextAlignCenter})
	b.add(ebitenhost.Block{Name: "hero.subtitle", Parent: "hero.copy",
		Bounds: reveal.Rect{X: x, Y: top + 144, Width: copyW, Height: 32},
		Text:   "Your Premier Partner for Global Higher Education Excellence", TextSize: 18, TextColor: white90})

	buttons := []struct {
		label  string
		w      float64
		fill   ebitenhost.Color
		stroke ebitenhost.Color
	}{
		{"Get Free Consultation", 260, brand, ebitenhost.Color{}},
		{"Explore Programs", 220, ebitenhost.Color{}, paper},
	}
	bx := x
	for i, btn := range buttons {
		id := reveal.NodeID(fmt.Sprintf("hero.cta.%d", i))
		el := reveal.Element{ID: id, Motion: still, Hover: heroButtonHover, Press: press(0.98)}
		if err := b.element(el, reveal.OnMount(), false); err != nil {
			return err
		}
		b.add(ebitenhost.Block{Name: string(id), Parent: "hero.copy", Node: id, Interactive: true,
			Bounds: reveal.Rect{X: bx, Y: top + 200, Width: btn.w, Height: 56}, Fill: btn.fill, Stroke: btn.stroke, StrokeWidth: 2,
			Text: btn.label, TextSize: 16, TextColor: paper, Align: ebitenhost.TextAlignCenter})
		bx += btn.w + 16
	}

	art := reveal.Rect{X: x + cw - artSize, Y: top, Width: artSize, Height: artSize}
	if err := b.element(reveal.Element{ID: "hero.art", Motion: reveal.FadeRight}, reveal.OnMount(), false); err != nil {
		return err
	}
	if err := b.element(reveal.Element{ID: "hero.float", Motion: reveal.Float}, reveal.OnMount(), false); err != nil {
		return err
	}
	b.add(ebitenhost.Block{Name: "hero.art", Parent: "hero", Node: "hero.art", Bounds: art})
	b.add(ebitenhost.Block{Name: "hero.float", Parent: "hero.art", Node: "hero.float", Bounds: art, Fill: glass,
		Text: "Global Education Partnership", TextSize: 18, TextColor: paper, Align: ebitenhost.TextAlignCenter})

	b.y = heroHeight
	return nil
}

// section lays out a heading and a card grid and registers them as one
// staggered group: heading first, then cards in reading order.
func (b *builder) section(s *section) error {
	id := reveal.NodeID(s.id)
	x, cw := b.contentBox()
	top := b.y
	y := top + sectionPad

	b.add(ebitenhost.Block{Name: s.id, Fill: s.bg, Bounds: reveal.Rect{Width: b.width}})
	sectionIdx := len(b.blocks) - 1

	var children []reveal.NodeID
	if s.title != "" {
		hid := id + ".heading"
		if err := b.element(reveal.Element{ID: hid, Motion: reveal.FadeUp}, reveal.OnViewportEnter(sectionAmount, true), true); err != nil {
			return err
		}
		b.add(ebitenhost.Block{Name: string(hid), Parent: s.id, Node: hid,
			Bounds: reveal.Rect{X: x, Y: y, Width: cw, Height: headingH},
			Text:   s.title, TextSize: 40, TextColor: s.heading, Align: ebitenhost.TextAlignCenter})
		children = append(children, hid)
		y += headingH + headingGap
	}

	cols := max(1, s.cols)
	cardW := (cw - float64(cols-1)*gridGap) / float64(cols)
	rows := (len(s.cards) + cols - 1) / cols
	for i, c := range s.cards {
		cid := reveal.NodeID(fmt.Sprintf("%s.card.%d", s.id, i))
		r := reveal.Rect{
			X:      x + float64(i%cols)*(cardW+gridGap),
			Y:      y + float64(i/cols)*(s.cardH+gridGap),
			Width:  cardW,
			Height: s.cardH,
		}
		el := reveal.Element{ID: cid, Motion: s.motion, Hover: s.hover, Press: s.press}
		if err := b.element(el, reveal.OnViewportEnter(sectionAmount, true), true); err != nil {
			return err
		}
		b.add(ebitenhost.Block{Name: string(cid), Parent: s.id, Node: cid, Interactive: true, Bounds: r, Fill: s.cardBg})
		if err := b.cardContent(cid, c, r); err != nil {
			return err
		}
		children = append(children, cid)
	}
	if rows > 0 {
		y += float64(rows)*s.cardH + float64(rows-1)*gridGap
	}
	y += sectionPad

	b.blocks[sectionIdx].Bounds = reveal.Rect{Y: top, Width: b.width, Height: y - top}
	b.y = y

	g := reveal.Group{ID: id, Children: children, Delay: sectionDelay, Stagger: sectionStagger}
	return b.group(g, reveal.OnViewportEnter(sectionAmount, true))
}

// cardContent adds a card's badge and its independently revealed captions.
func (b *builder) cardContent(cid reveal.NodeID, c card, r reveal.Rect) error {
	y := r.Y + cardInset
	if c.badge != "" {
		b.add(ebitenhost.Block{Name: string(cid) + ".badge", Parent: string(cid),
			Bounds: reveal.Rect{X: r.X + cardInset, Y: y, Width: r.Width - 2*cardInset, Height: badgeH},
			Text:   c.badge, TextSize: 28, TextColor: brand})
		y += badgeH + 12
	}
	for j, cp := range c.captions {
		id := reveal.NodeID(fmt.Sprintf("%s.caption.%d", cid, j))
		if err := b.element(reveal.Element{ID: id, Motion: cp.motion}, reveal.OnViewportEnter(0, false), false); err != nil {
			return err
		}
		h := math.Ceil(cp.size * 1.6)
		b.add(ebitenhost.Block{Name: string(id), Parent: string(cid), Node: id,
			Bounds: reveal.Rect{X: r.X + cardInset, Y: y, Width: r.Width - 2*cardInset, Height: h},
			Text:   cp.text, TextSize: cp.size, TextColor: cp.color})
		y += h + 8
	}
	return nil
}

func (b *builder) cta() error {
	x, cw := b.contentBox()
	top := b.y
	y := top + sectionPad
	b.add(ebitenhost.Block{Name: "cta", Fill: brand, Bounds: reveal.Rect{Y: top, Width: b.width}})
	idx := len(b.blocks) - 1

	trig := reveal.OnViewportEnter(ctaAmount, true)
	nodes := []struct {
		el    reveal.Element
		block ebitenhost.Block
	}{
		{
			reveal.Element{ID: "cta.heading", Motion: reveal.FadeUp},
			ebitenhost.Block{Bounds: reveal.Rect{X: x, Y: y, Width: cw, Height: headingH},
				Text: "Begin Your International Education Journey", TextSize: 40, TextColor: paper, Align: ebitenhost.TextAlignCenter},
		},
		{
			reveal.Element{ID: "cta.copy", Motion: reveal.FadeUp.WithDelay(0.2)},
			ebitenhost.Block{Bounds: reveal.Rect{X: x, Y: y + headingH + 20, Width: cw, Height: 32},
				Text: "Connect with our expert counselors today for personalized guidance", TextSize: 18, TextColor: white90, Align: ebitenhost.TextAlignCenter},
		},
		{
			reveal.Element{ID: "cta.button", Motion: reveal.ScaleIn, Hover: growHover, Press: press(0.95)},
			ebitenhost.Block{Bounds: reveal.Rect{X: b.width/2 - 140, Y: y + headingH + 92, Width: 280, Height: 56},
				Fill: paper, Text: "Schedule Consultation", TextSize: 16, TextColor: brand, Align: ebitenhost.TextAlignCenter, Interactive: true},
		},
	}
	children := make([]reveal.NodeID, 0, len(nodes))
	for _, n := range nodes {
		if err := b.element(n.el, trig, true); err != nil {
			return err
		}
		n.block.Name = string(n.el.ID)
		n.block.Parent = "cta"
		n.block.Node = n.el.ID
		b.add(n.block)
		children = append(children, n.el.ID)
	}
	y += headingH + 92 + 56 + sectionPad
	b.blocks[idx].Bounds.Height = y - top
	b.y = y

	return b.group(reveal.Group{ID: "cta", Children: children, Delay: sectionDelay, Stagger: sectionStagger}, trig)
}

func (b *builder) footer() error {
	r := reveal.Rect{Y: b.y, Width: b.width, Height: footerH}
	if err := b.element(reveal.Element{ID: "footer", Motion: footerRise}, reveal.OnViewportEnter(0, true), false); err != nil {
		return err
	}
	if err := b.element(reveal.Element{ID: "footer.line", Motion: reveal.Pulse}, reveal.OnMount(), false); err != nil {
		return err
	}
	b.add(ebitenhost.Block{Name: "footer", Node: "footer", Bounds: r, Fill: ink})
	b.add(ebitenhost.Block{Name: "footer.line", Parent: "footer", Node: "footer.line",
		Bounds: reveal.Rect{Y: r.Y + 40, Width: b.width, Height: 40},
		Text:   "© 2026 MR International Education Centre", TextSize: 16, TextColor: paper, Align: ebitenhost.TextAlignCenter})
	b.y += footerH
	return nil
}
