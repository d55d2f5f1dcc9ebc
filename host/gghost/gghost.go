// Package gghost paints tween items with gg.
//
// A Canvas keeps a list of rectangles and text labels, receives property
// writes from a tween.Timeline and renders them into a gg.Context. Its clock
// is a frame counter: each Step advances it by the frame interval, so output
// is the same on every run regardless of wall time.
//
// Example:
//
//	c, err := gghost.New(640, 480)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	c.AddItem(1, gghost.NewItem(tween.ItemOther, 0, 0, 40, 40, gg.Hex("#e63946")))
//	tl := tween.NewTimeline(c)
//	_ = tl.Add(tween.Position, 1, tween.V(0, 0), tween.V(600, 0), ease.EaseInOut, 60)
//
//	for i := 0; i < 61; i++ {
//	    tl.Tick()
//	    c.Step()
//	}
//	_ = c.Render()
//	_ = c.SavePNG("out.png")
package gghost

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/tween"
)

// Item is one drawable item.
type Item struct {
	Kind tween.ItemKind
	X, Y int
	W, H int

	// Color fills rectangles. For ItemText it is the text colour and its
	// alpha channel is what SetTextColorAlpha writes.
	Color gg.RGBA

	// Alpha multiplies the whole item. SetGenericAlpha writes it.
	Alpha float64

	// Text is drawn for ItemText items, baseline at the bottom of the box.
	Text string
}

// NewItem returns a fully opaque item. Set Alpha to 0 afterwards for an
// item that starts hidden.
func NewItem(kind tween.ItemKind, x, y, w, h int, col gg.RGBA) Item {
	return Item{Kind: kind, X: x, Y: y, W: w, H: h, Color: col, Alpha: 1}
}

// Option configures a Canvas.
type Option func(*config)

type config struct {
	background gg.RGBA
	interval   time.Duration
	fontSize   float64
}

func defaultConfig() config {
	return config{
		background: gg.RGB(0.1, 0.1, 0.12),
		interval:   time.Second / 60,
		fontSize:   16,
	}
}

// WithBackground sets the colour Render clears to.
func WithBackground(c gg.RGBA) Option {
	return func(o *config) {
		o.background = c
	}
}

// WithFrameInterval sets how far Step advances the clock. Default is 1/60 s.
func WithFrameInterval(d time.Duration) Option {
	return func(o *config) {
		o.interval = d
	}
}

// WithFontSize sets the text size in points. Default is 16.
func WithFontSize(size float64) Option {
	return func(o *config) {
		o.fontSize = size
	}
}

// Canvas is a tween.Host that renders into a gg.Context.
// It is not safe for concurrent use.
type Canvas struct {
	cfg   config
	dc    *gg.Context
	face  text.Face
	now   time.Duration
	frame int
	items map[tween.ItemID]*Item
	order []tween.ItemID
}

var _ tween.Host = (*Canvas)(nil)

// New creates a width x height canvas with the Go Regular font loaded.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gghost: invalid canvas size %dx%d", width, height)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.interval <= 0 {
		return nil, fmt.Errorf("gghost: frame interval must be positive, got %v", cfg.interval)
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gghost: load font: %w", err)
	}

	return &Canvas{
		cfg:   cfg,
		dc:    gg.NewContext(width, height),
		face:  source.Face(cfg.fontSize),
		items: make(map[tween.ItemID]*Item),
	}, nil
}

// AddItem registers or replaces an item as given; see NewItem for opaque
// defaults. Items are painted in the order they were first added.
func (c *Canvas) AddItem(id tween.ItemID, it Item) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = &it
}

// Item returns a copy of the item state.
func (c *Canvas) Item(id tween.ItemID) (Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Step advances the clock by one frame interval.
func (c *Canvas) Step() {
	c.frame++
	c.now += c.cfg.interval
}

// Frame returns how many times Step has been called.
func (c *Canvas) Frame() int {
	return c.frame
}

// Render clears the canvas and paints every item.
func (c *Canvas) Render() error {
	c.dc.ClearWithColor(c.cfg.background)
	c.dc.SetFont(c.face)

	for _, id := range c.order {
		it := c.items[id]
		col := it.Color
		col.A *= clamp01(it.Alpha)
		if col.A <= 0 {
			continue
		}
		c.dc.SetRGBA(col.R, col.G, col.B, col.A)

		if it.Kind == tween.ItemText {
			c.dc.DrawString(it.Text, float64(it.X), float64(it.Y+it.H))
			continue
		}
		c.dc.DrawRectangle(float64(it.X), float64(it.Y), float64(it.W), float64(it.H))
		if err := c.dc.Fill(); err != nil {
			return fmt.Errorf("gghost: paint item %d: %w", id, err)
		}
	}
	return nil
}

// Image returns the last rendered frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the last rendered frame to path.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Now implements tween.Host.
func (c *Canvas) Now() time.Duration {
	return c.now
}

// ItemKind implements tween.Host. Unknown items are ItemOther.
func (c *Canvas) ItemKind(id tween.ItemID) tween.ItemKind {
	if it, ok := c.items[id]; ok {
		return it.Kind
	}
	return tween.ItemOther
}

// SetPosition implements tween.Host. Writes to unknown items are ignored.
func (c *Canvas) SetPosition(id tween.ItemID, x, y int) {
	if it, ok := c.items[id]; ok {
		it.X, it.Y = x, y
	}
}

// SetWidth implements tween.Host.
func (c *Canvas) SetWidth(id tween.ItemID, w int) {
	if it, ok := c.items[id]; ok {
		it.W = w
	}
}

// SetHeight implements tween.Host.
func (c *Canvas) SetHeight(id tween.ItemID, h int) {
	if it, ok := c.items[id]; ok {
		it.H = h
	}
}

// SetTextColorAlpha implements tween.Host.
func (c *Canvas) SetTextColorAlpha(id tween.ItemID, alpha float64) {
	if it, ok := c.items[id]; ok {
		it.Color.A = clamp01(alpha)
	}
}

// SetGenericAlpha implements tween.Host.
func (c *Canvas) SetGenericAlpha(id tween.ItemID, alpha float64) {
	if it, ok := c.items[id]; ok {
		it.Alpha = alpha
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
