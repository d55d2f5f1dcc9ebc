package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gogpu/tween"
	"github.com/gogpu/tween/host/gghost"
)

// runPNG plays the scene on a gg canvas and saves every Nth frame, plus the
// last one, to dir.
func runPNG(d demo, dir string, every int) error {
	sc := d.scene
	if every <= 0 {
		every = 1
	}

	c, err := gghost.New(sc.Width, sc.Height,
		gghost.WithBackground(gg.Hex(sc.Background)),
		gghost.WithFrameInterval(d.frameInterval()))
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	items := place(sc, 1, 1)
	for _, p := range items {
		it := gghost.NewItem(p.kind, p.x, p.y, p.w, p.h, gg.Hex(p.color))
		it.Text = p.text
		c.AddItem(p.id, it)
	}

	tl := tween.NewTimeline(c)
	if err := d.choreograph(tl, items, sc.Width); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	saved := 0
	for f := 0; f < sc.Frames; f++ {
		tl.Tick()
		if f%every == 0 || f == sc.Frames-1 {
			if err := c.Render(); err != nil {
				return err
			}
			path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", f))
			if err := c.SavePNG(path); err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			saved++
		}
		c.Step()
	}

	log.Printf("Saved %d frames to %s (%dx%d)\n", saved, dir, sc.Width, sc.Height)
	return nil
}
