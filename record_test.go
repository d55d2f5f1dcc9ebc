package tween

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/tween/internal/accum"
)

func newRecord(duration int, loop LoopMode) *record {
	return &record{
		kind:     Position,
		start:    gg.Pt(10, 20),
		dist:     gg.Pt(30, -20),
		curve:    linear,
		duration: duration,
		loop:     loop,
	}
}

func TestRecord_AdvanceForward(t *testing.T) {
	r := newRecord(3, LoopNone)
	for want := 1; want <= 3; want++ {
		completed, live := r.advance()
		if completed || !live {
			t.Fatalf("frame %d: completed=%v live=%v", r.frame, completed, live)
		}
		if r.frame != want {
			t.Fatalf("frame = %d, want %d", r.frame, want)
		}
	}

	completed, live := r.advance()
	if !completed || live {
		t.Errorf("at duration: completed=%v live=%v, want true false", completed, live)
	}
	if r.loops != 0 {
		t.Errorf("loops = %d, want 0 without loop mode", r.loops)
	}
}

func TestRecord_AdvanceReversed(t *testing.T) {
	r := newRecord(4, LoopPingPong)
	r.frame = 2
	r.reversed = true

	r.advance()
	if r.frame != 1 || !r.reversed {
		t.Fatalf("frame=%d reversed=%v, want 1 true", r.frame, r.reversed)
	}
	r.advance()
	if r.frame != 0 || !r.reversed {
		t.Fatalf("frame=%d reversed=%v, want 0 true", r.frame, r.reversed)
	}
	r.advance()
	if r.frame != 1 || r.reversed {
		t.Fatalf("frame=%d reversed=%v, want 1 false", r.frame, r.reversed)
	}
}

func TestRecord_Rearm(t *testing.T) {
	tests := []struct {
		name         string
		loop         LoopMode
		wantFrame    int
		wantLastEase float64
		wantReversed bool
		wantStart    gg.Point
	}{
		{"ping-pong", LoopPingPong, 4, 1, true, gg.Pt(10, 20)},
		{"cycle", LoopCycle, 0, 0, false, gg.Pt(10, 20)},
		{"continue", LoopContinue, 0, 0, false, gg.Pt(40, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(5, tt.loop)
			r.frame = 5
			r.lastEase = 1

			completed, live := r.advance()
			if !completed || !live {
				t.Fatalf("completed=%v live=%v, want true true", completed, live)
			}
			if r.frame != tt.wantFrame {
				t.Errorf("frame = %d, want %d", r.frame, tt.wantFrame)
			}
			if r.lastEase != tt.wantLastEase {
				t.Errorf("lastEase = %v, want %v", r.lastEase, tt.wantLastEase)
			}
			if r.reversed != tt.wantReversed {
				t.Errorf("reversed = %v, want %v", r.reversed, tt.wantReversed)
			}
			if r.start != tt.wantStart {
				t.Errorf("start = %v, want %v", r.start, tt.wantStart)
			}
			if r.dist != gg.Pt(30, -20) {
				t.Errorf("dist = %v, must not change", r.dist)
			}
			if r.loops != 1 {
				t.Errorf("loops = %d, want 1", r.loops)
			}
		})
	}
}

func TestRecord_Request(t *testing.T) {
	tests := []struct {
		name  string
		loop  LoopMode
		frame int
		want  accum.Request
	}{
		{"advancing", LoopNone, 2, accum.RequestSnap},
		{"advancing looped", LoopCycle, 2, accum.RequestSnap},
		{"final", LoopNone, 5, accum.RequestFinal},
		{"cycle wrap", LoopCycle, 5, accum.RequestReset},
		{"ping-pong turn", LoopPingPong, 5, accum.RequestSnap},
		{"continue wrap", LoopContinue, 5, accum.RequestSnap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(5, tt.loop)
			r.frame = tt.frame
			if got := r.request(); got != tt.want {
				t.Errorf("request() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecord_Step(t *testing.T) {
	r := newRecord(5, LoopNone)
	r.lastEase = 0.25
	if got := r.step(0.75); got != gg.Pt(15, -10) {
		t.Errorf("step(0.75) = %v, want (15,-10)", got)
	}
}

func TestRecord_Due(t *testing.T) {
	r := newRecord(5, LoopNone)
	r.startTime = 100
	if r.due(99) {
		t.Error("due before start time")
	}
	if !r.due(100) {
		t.Error("not due at start time")
	}
	r.paused = true
	if r.due(200) {
		t.Error("paused record is due")
	}
}

func TestRecord_InfoEnd(t *testing.T) {
	r := newRecord(5, LoopNone)
	if got := r.info().End(); got != V(40, 0) {
		t.Errorf("End() = %v, want (40, 0)", got)
	}

	o := &record{kind: Opacity, start: gg.Pt(0.2, 0), dist: gg.Pt(0.5, 0), duration: 1}
	if got := o.info().End(); got != Scalar(0.7) {
		t.Errorf("End() = %v, want 0.7", got)
	}
}
