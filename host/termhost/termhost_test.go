package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/tween"
	"github.com/gogpu/tween/ease"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	red   = colorful.Color{R: 1, G: 0, B: 0}
)

// newScreen returns a host on a 20x8 simulation screen and a clock that
// advances one frame per call to step.
func newScreen(t *testing.T) (*Screen, tcell.SimulationScreen, func()) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(20, 8)

	var now time.Duration
	s := New(sim, WithBackground(black), WithClock(func() time.Duration { return now }))
	return s, sim, func() { now += 16 * time.Millisecond }
}

func bgAt(t *testing.T, sim tcell.SimulationScreen, x, y int) tcell.Style {
	t.Helper()
	_, _, style, _ := sim.GetContent(x, y)
	return style
}

func TestScreen_Box(t *testing.T) {
	s, sim, _ := newScreen(t)
	s.AddItem(1, NewItem(tween.ItemOther, 2, 1, 3, 2, red))
	s.Render()

	want := tcell.StyleDefault.Background(cellColor(red))
	empty := tcell.StyleDefault.Background(cellColor(black))
	for _, tt := range []struct {
		x, y int
		want tcell.Style
	}{
		{2, 1, want},
		{4, 2, want},
		{1, 1, empty},
		{5, 1, empty},
		{2, 3, empty},
	} {
		if got := bgAt(t, sim, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d,%d) style = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreen_ClipsOffscreen(t *testing.T) {
	s, sim, _ := newScreen(t)
	s.AddItem(1, NewItem(tween.ItemOther, -2, 6, 5, 5, red))
	s.Render()

	want := tcell.StyleDefault.Background(cellColor(red))
	if got := bgAt(t, sim, 0, 7); got != want {
		t.Errorf("visible part not drawn: %v", got)
	}
}

func TestScreen_AlphaBlend(t *testing.T) {
	s, _, _ := newScreen(t)
	tests := []struct {
		alpha float64
		want  colorful.Color
	}{
		{1, red},
		{0, black},
		{0.5, colorful.Color{R: 0.5}},
		{-1, black},
		{3, red},
	}
	for _, tt := range tests {
		got := s.blend(red, tt.alpha)
		if !got.AlmostEqualRgb(tt.want) {
			t.Errorf("blend(red, %v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}

func TestScreen_Animated(t *testing.T) {
	s, sim, step := newScreen(t)
	s.AddItem(1, NewItem(tween.ItemOther, 0, 0, 2, 1, red))

	tl := tween.NewTimeline(s)
	if err := tl.Add(tween.Position, 1, tween.V(0, 0), tween.V(10, 4), ease.EaseOut, 5); err != nil {
		t.Fatal(err)
	}
	if err := tl.Add(tween.Opacity, 1, tween.Scalar(1), tween.Scalar(0.5), ease.Linear, 5); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		tl.Tick()
		step()
	}
	if tl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tl.Len())
	}

	s.Render()
	it, _ := s.Item(1)
	if it.X != 10 || it.Y != 4 {
		t.Fatalf("item at (%d,%d), want (10,4)", it.X, it.Y)
	}
	want := tcell.StyleDefault.Background(cellColor(s.blend(red, it.Alpha)))
	if got := bgAt(t, sim, 11, 4); got != want {
		t.Errorf("cell style = %v, want %v", got, want)
	}
}

func TestScreen_StartsHidden(t *testing.T) {
	s, sim, _ := newScreen(t)
	s.AddItem(1, Item{X: 2, Y: 1, W: 3, H: 2, Color: red})

	if it, _ := s.Item(1); it.Alpha != 0 || it.TextAlpha != 0 {
		t.Fatalf("alphas = %v, %v after AddItem, want 0, 0", it.Alpha, it.TextAlpha)
	}
	s.Render()
	empty := tcell.StyleDefault.Background(cellColor(black))
	if got := bgAt(t, sim, 2, 1); got != empty {
		t.Errorf("hidden item drawn: %v", got)
	}
}

func TestScreen_Text(t *testing.T) {
	s, sim, _ := newScreen(t)
	label := NewItem(tween.ItemText, 1, 2, 3, 1, red)
	label.Text = "hello"
	s.AddItem(2, label)
	s.SetTextColorAlpha(2, 0.5)
	s.Render()

	for x, want := range []rune("hel") {
		r, _, _, _ := sim.GetContent(1+x, 2)
		if r != want {
			t.Errorf("cell %d = %q, want %q", 1+x, r, want)
		}
	}
	if r, _, _, _ := sim.GetContent(4, 2); r != ' ' {
		t.Errorf("text overflowed its width: %q", r)
	}

	_, _, style, _ := sim.GetContent(1, 2)
	want := tcell.StyleDefault.Background(cellColor(black)).Foreground(cellColor(s.blend(red, 0.5)))
	if style != want {
		t.Errorf("text style = %v, want %v", style, want)
	}
}

func TestScreen_Host(t *testing.T) {
	s, _, step := newScreen(t)
	s.AddItem(1, NewItem(tween.ItemWindow, 0, 0, 40, 40, black))

	if s.Now() != 0 {
		t.Errorf("Now() = %v, want 0", s.Now())
	}
	step()
	if s.Now() != 16*time.Millisecond {
		t.Errorf("Now() = %v after one step", s.Now())
	}

	if got := s.ItemKind(1); got != tween.ItemWindow {
		t.Errorf("ItemKind(1) = %v", got)
	}
	if got := s.ItemKind(5); got != tween.ItemOther {
		t.Errorf("ItemKind(5) = %v", got)
	}

	s.SetWidth(1, 50)
	s.SetHeight(1, 60)
	s.SetPosition(5, 1, 1)
	it, _ := s.Item(1)
	if it.W != 50 || it.H != 60 {
		t.Errorf("size = %dx%d", it.W, it.H)
	}
	if _, ok := s.Item(5); ok {
		t.Error("write created an unknown item")
	}
}
