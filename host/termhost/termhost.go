// Package termhost draws tween items on a terminal through tcell.
//
// Items are boxes of cells addressed in cell coordinates. A terminal has no
// alpha channel, so opacity is shown by blending an item's colour toward the
// background colour before it is written to the cell.
package termhost

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/tween"
)

// Item is one box on the terminal.
type Item struct {
	Kind tween.ItemKind
	X, Y int
	W, H int

	// Color fills the box, or colours the text of ItemText items.
	Color colorful.Color

	// Alpha is the item-level opacity written by SetGenericAlpha.
	Alpha float64

	// TextAlpha is the text colour opacity written by SetTextColorAlpha.
	TextAlpha float64

	// Text is drawn on the first row of ItemText items.
	Text string
}

// NewItem returns a fully opaque item. Lower Alpha or TextAlpha afterwards
// for an item that starts faded.
func NewItem(kind tween.ItemKind, x, y, w, h int, col colorful.Color) Item {
	return Item{Kind: kind, X: x, Y: y, W: w, H: h, Color: col, Alpha: 1, TextAlpha: 1}
}

// Option configures a Screen.
type Option func(*Screen)

// WithBackground sets the colour items blend toward. Default is black.
func WithBackground(c colorful.Color) Option {
	return func(s *Screen) {
		s.background = c
	}
}

// WithClock replaces the wall clock, for example with a frame counter.
func WithClock(now func() time.Duration) Option {
	return func(s *Screen) {
		s.now = now
	}
}

// Screen is a tween.Host on a tcell.Screen. The tcell screen must already
// be initialized. Screen is not safe for concurrent use.
type Screen struct {
	screen     tcell.Screen
	background colorful.Color
	now        func() time.Duration
	items      map[tween.ItemID]*Item
	order      []tween.ItemID
}

var _ tween.Host = (*Screen)(nil)

// New wraps screen. Without WithClock, Now reports wall time since New.
func New(screen tcell.Screen, opts ...Option) *Screen {
	s := &Screen{
		screen: screen,
		items:  make(map[tween.ItemID]*Item),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.now == nil {
		start := time.Now()
		s.now = func() time.Duration { return time.Since(start) }
	}
	return s
}

// AddItem registers or replaces an item as given; see NewItem for opaque
// defaults. Items are drawn in the order they were first added.
func (s *Screen) AddItem(id tween.ItemID, it Item) {
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = &it
}

// Item returns a copy of the item state.
func (s *Screen) Item(id tween.ItemID) (Item, bool) {
	it, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Render clears the terminal to the background, draws every item and shows
// the result.
func (s *Screen) Render() {
	bg := tcell.StyleDefault.Background(cellColor(s.background))
	s.screen.Fill(' ', bg)

	w, h := s.screen.Size()
	for _, id := range s.order {
		it := s.items[id]
		if it.Kind == tween.ItemText {
			s.drawText(it, bg, w, h)
			continue
		}

		style := bg.Background(cellColor(s.blend(it.Color, it.Alpha)))
		for y := max(it.Y, 0); y < min(it.Y+it.H, h); y++ {
			for x := max(it.X, 0); x < min(it.X+it.W, w); x++ {
				s.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
	s.screen.Show()
}

func (s *Screen) drawText(it *Item, bg tcell.Style, w, h int) {
	if it.Y < 0 || it.Y >= h {
		return
	}
	style := bg.Foreground(cellColor(s.blend(it.Color, it.Alpha*it.TextAlpha)))
	x := it.X
	for _, r := range it.Text {
		rw := runewidth.RuneWidth(r)
		if x >= w || (it.W > 0 && x+rw > it.X+it.W) {
			break
		}
		if x >= 0 {
			s.screen.SetContent(x, it.Y, r, nil, style)
		}
		x += rw
	}
}

// blend returns c seen at the given opacity over the background.
func (s *Screen) blend(c colorful.Color, alpha float64) colorful.Color {
	return s.background.BlendRgb(c, clamp01(alpha)).Clamped()
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Now implements tween.Host.
func (s *Screen) Now() time.Duration {
	return s.now()
}

// ItemKind implements tween.Host. Unknown items are ItemOther.
func (s *Screen) ItemKind(id tween.ItemID) tween.ItemKind {
	if it, ok := s.items[id]; ok {
		return it.Kind
	}
	return tween.ItemOther
}

// SetPosition implements tween.Host. Writes to unknown items are ignored.
func (s *Screen) SetPosition(id tween.ItemID, x, y int) {
	if it, ok := s.items[id]; ok {
		it.X, it.Y = x, y
	}
}

// SetWidth implements tween.Host.
func (s *Screen) SetWidth(id tween.ItemID, w int) {
	if it, ok := s.items[id]; ok {
		it.W = w
	}
}

// SetHeight implements tween.Host.
func (s *Screen) SetHeight(id tween.ItemID, h int) {
	if it, ok := s.items[id]; ok {
		it.H = h
	}
}

// SetTextColorAlpha implements tween.Host.
func (s *Screen) SetTextColorAlpha(id tween.ItemID, alpha float64) {
	if it, ok := s.items[id]; ok {
		it.TextAlpha = alpha
	}
}

// SetGenericAlpha implements tween.Host.
func (s *Screen) SetGenericAlpha(id tween.ItemID, alpha float64) {
	if it, ok := s.items[id]; ok {
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
