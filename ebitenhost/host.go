package ebitenhost

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/reveal"
)

const (
	defaultScrollSpeed = 60  // pixels per wheel notch
	keyScrollDuration  = 0.4 // seconds for PageUp/PageDown/Home/End
	fpsRefresh         = 0.5 // seconds between FPS overlay redraws
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Debug enables the animator's per-tick stats on stderr.
	Debug bool
	// ScrollSpeed is pixels per mouse wheel notch. Zero uses 60.
	ScrollSpeed float64
	ClearColor  Color
	// ScreenshotDir receives PNGs for "snapshot" script steps. Empty
	// disables capture.
	ScreenshotDir string
	// Script, when set, drives the animator one step per frame. Pointer
	// input is ignored until it finishes.
	Script *reveal.Script
	// ExitOnScriptEnd closes the window once Script is done.
	ExitOnScriptEnd bool
}

// Host is an ebiten.Game that scrolls a Page, feeds the viewport and
// pointer state to an Animator and paints the animated blocks.
type Host struct {
	a    *reveal.Animator
	page *Page
	cfg  RunConfig

	scroll  *scroller
	painter *painter
	placed  []placed

	hovered reveal.NodeID
	pressed reveal.NodeID

	frame     int
	snapshots []string
	log       io.Writer

	fpsImg   *ebiten.Image
	fpsClock float64
}

// NewHost validates cfg and prepares a host. It does not open a window.
func NewHost(a *reveal.Animator, page *Page, cfg RunConfig) (*Host, error) {
	if a == nil || page == nil {
		return nil, errors.New("ebitenhost: animator and page are required")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("ebitenhost: window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ScrollSpeed == 0 {
		cfg.ScrollSpeed = defaultScrollSpeed
	}
	p, err := newPainter()
	if err != nil {
		return nil, err
	}
	return &Host{
		a:       a,
		page:    page,
		cfg:     cfg,
		scroll:  newScroller(page.Height, float64(cfg.Height)),
		painter: p,
		log:     os.Stderr,
	}, nil
}

// Run opens a window and blocks until it is closed.
func Run(a *reveal.Animator, page *Page, cfg RunConfig) error {
	h, err := NewHost(a, page, cfg)
	if err != nil {
		return err
	}
	a.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(h)
}

// ScrollY returns the current scroll offset.
func (h *Host) ScrollY() float64 {
	return h.scroll.y
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	scripted := h.cfg.Script != nil && !h.cfg.Script.Done()

	if !scripted {
		h.handleScrollInput()
	}
	if err := h.step(dt); err != nil {
		return err
	}
	if !scripted {
		mx, my := ebiten.CursorPosition()
		h.pointer(float64(mx), float64(my)+h.scroll.y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}
	if h.cfg.ExitOnScriptEnd && h.cfg.Script != nil && h.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

// step advances one frame without reading input: publish the viewport,
// run the script, tick the animator and re-place the page.
func (h *Host) step(dt float64) error {
	if h.scroll.update(float32(dt)) {
		h.publishViewport()
	}
	if s := h.cfg.Script; s != nil && !s.Done() {
		if err := s.Step(h.a, h.queueSnapshot); err != nil {
			return err
		}
	}
	h.a.Tick(dt)

	// Follow viewport changes made outside the scroller, e.g. by a script.
	if vp, ok := h.a.Viewport(); ok && vp.Y != h.scroll.y {
		h.scroll.tween = nil
		h.scroll.y = h.scroll.clamp(vp.Y)
	}
	h.placed = h.page.place(h.a, h.placed)
	h.frame++
	return nil
}

func (h *Host) publishViewport() {
	h.a.SetViewport(reveal.Rect{
		Y:      h.scroll.y,
		Width:  float64(h.cfg.Width),
		Height: float64(h.cfg.Height),
	})
}

func (h *Host) handleScrollInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		h.scroll.Nudge(-wy * h.cfg.ScrollSpeed)
	}
	page := float64(h.cfg.Height) * 0.9
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		h.scroll.ScrollTo(h.scroll.y+page, keyScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		h.scroll.ScrollTo(h.scroll.y-page, keyScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		h.scroll.ScrollTo(0, keyScrollDuration, ease.OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		h.scroll.ScrollTo(h.scroll.max, keyScrollDuration, ease.OutCubic)
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		h.scroll.Nudge(h.cfg.ScrollSpeed / 6)
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		h.scroll.Nudge(-h.cfg.ScrollSpeed / 6)
	}
}

// pointer maps the pointer at page point (x, y) onto hover and press
// variants. Leaving a node releases both.
func (h *Host) pointer(x, y float64, down bool) {
	var id reveal.NodeID
	if i := hitTest(h.placed, x, y); i >= 0 {
		id = h.placed[i].block.Node
	}

	if id != h.hovered {
		if h.hovered != "" {
			if h.pressed == h.hovered {
				h.variant(h.a.ReleaseTransient, h.pressed, reveal.TransientPress)
				h.pressed = ""
			}
			h.variant(h.a.ReleaseTransient, h.hovered, reveal.TransientHover)
		}
		if id != "" {
			h.variant(h.a.ApplyTransient, id, reveal.TransientHover)
		}
		h.hovered = id
	}

	switch {
	case down && h.pressed == "" && id != "":
		h.variant(h.a.ApplyTransient, id, reveal.TransientPress)
		h.pressed = id
	case !down && h.pressed != "":
		h.variant(h.a.ReleaseTransient, h.pressed, reveal.TransientPress)
		h.pressed = ""
	}
}

// variant applies or releases a transient. Nodes without the variant are
// skipped silently.
func (h *Host) variant(fn func(reveal.NodeID, reveal.TransientKind) error, id reveal.NodeID, kind reveal.TransientKind) {
	err := fn(id, kind)
	if err == nil || errors.Is(err, reveal.ErrInvalidSpec) {
		return
	}
	if h.cfg.Debug {
		_, _ = fmt.Fprintf(h.log, "[reveal] %s %s: %v\n", kind, id, err)
	}
}

func (h *Host) queueSnapshot(label string) {
	if h.cfg.ScreenshotDir != "" {
		h.snapshots = append(h.snapshots, label)
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.cfg.ClearColor.toRGBA())
	h.painter.draw(screen, h.placed, h.scroll.y, float64(h.cfg.Height))

	if len(h.snapshots) > 0 {
		if err := capture(screen, h.cfg.ScreenshotDir, h.frame, h.snapshots); err != nil {
			_, _ = fmt.Fprintf(h.log, "[reveal] %v\n", err)
		}
		h.snapshots = h.snapshots[:0]
	}

	if h.cfg.ShowFPS {
		h.drawFPS(screen)
	}
}

// drawFPS refreshes a small FPS/TPS label every half second and draws it in
// the top-left corner.
func (h *Host) drawFPS(screen *ebiten.Image) {
	if h.fpsImg == nil {
		h.fpsImg = ebiten.NewImage(100, 32)
		h.fpsClock = fpsRefresh
	}
	h.fpsClock += 1.0 / float64(ebiten.TPS())
	if h.fpsClock >= fpsRefresh {
		h.fpsClock = 0
		h.fpsImg.Clear()
		h.fpsImg.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.fpsImg, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(h.fpsImg, nil)
}

// Layout implements ebiten.Game.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.cfg.Width, h.cfg.Height
}
