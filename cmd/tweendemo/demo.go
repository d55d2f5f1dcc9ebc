package main

import (
	"fmt"
	"time"

	"github.com/gogpu/tween"
	"github.com/gogpu/tween/ease"
)

type demo struct {
	scene Scene
	curve ease.Curve
	loop  tween.LoopMode
	chime *chime
}

// placed is a scene item converted to host units.
type placed struct {
	id    tween.ItemID
	kind  tween.ItemKind
	x, y  int
	w, h  int
	color string
	text  string
}

// place converts scene items, dividing pixel geometry by the unit size.
func place(sc Scene, unitW, unitH int) []placed {
	out := make([]placed, 0, len(sc.Items))
	for _, it := range sc.Items {
		kind, _ := tween.ParseItemKind(it.Kind)
		out = append(out, placed{
			id:    tween.ItemID(it.ID),
			kind:  kind,
			x:     it.Rect[0] / unitW,
			y:     it.Rect[1] / unitH,
			w:     max(it.Rect[2]/unitW, 1),
			h:     max(it.Rect[3]/unitH, 1),
			color: it.Color,
			text:  it.Text,
		})
	}
	return out
}

// frameInterval is the host clock advance per frame.
func (d demo) frameInterval() time.Duration {
	return time.Second / time.Duration(d.scene.FPS)
}

// choreograph adds one animation per item: windows resize, text fades and
// everything else slides across the width w of the host space, staggered.
func (d demo) choreograph(tl *tween.Timeline, items []placed, w int) error {
	second := d.scene.FPS
	for i, p := range items {
		freq := 440 * (1 + 0.25*float64(i%4))
		opts := []tween.AddOption{
			tween.WithLoop(d.loop),
			tween.WithOnComplete(func(_ tween.ItemID, data any) {
				d.chime.play(data.(float64))
			}, freq),
		}

		var err error
		switch p.kind {
		case tween.ItemWindow:
			err = tl.Add(tween.Size, p.id,
				tween.V(float64(p.w), float64(p.h)),
				tween.V(float64(p.w)*1.5, float64(p.h)*0.5),
				d.curve, second, append(opts, tween.WithName("resize"))...)
		case tween.ItemText:
			err = tl.Add(tween.Opacity, p.id, tween.Scalar(1), tween.Scalar(0.2),
				d.curve, second, append(opts, tween.WithName("fade"))...)
		default:
			to := float64(max(w-p.w-p.x, p.x))
			err = tl.Add(tween.Position, p.id,
				tween.V(float64(p.x), float64(p.y)),
				tween.V(to, float64(p.y)),
				d.curve, 2*second, append(opts,
					tween.WithName("slide"),
					tween.WithDelay(time.Duration(i)*time.Second/4))...)
		}
		if err != nil {
			return fmt.Errorf("item %d: %w", p.id, err)
		}
	}
	return nil
}
