package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/tween"
	"github.com/gogpu/tween/host/termhost"
)

// runTerm plays the scene in the terminal at the scene frame rate until the
// frame count is reached or the user presses q, Esc or Ctrl-C.
func runTerm(d demo) error {
	sc := d.scene

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Colours were checked when the scene was loaded.
	bg, _ := colorful.Hex(sc.Background)

	frame := 0
	interval := d.frameInterval()
	h := termhost.New(screen,
		termhost.WithBackground(bg),
		termhost.WithClock(func() time.Duration { return time.Duration(frame) * interval }))

	items := place(sc, sc.CellWidth, sc.CellHeight)
	for _, p := range items {
		h.AddItem(p.id, termItem(p))
	}

	tl := tween.NewTimeline(h)
	w, _ := screen.Size()
	if err := d.choreograph(tl, items, w); err != nil {
		return err
	}

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ; frame < sc.Frames; frame++ {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
		tl.Tick()
		h.Render()
	}
	return nil
}

// termItem converts a placed item to cells, widening text items to fit their
// label. Colours were checked when the scene was loaded.
func termItem(p placed) termhost.Item {
	col, _ := colorful.Hex(p.color)
	it := termhost.NewItem(p.kind, p.x, p.y, max(p.w, runewidth.StringWidth(p.text)), p.h, col)
	it.Text = p.text
	return it
}
