package tween

import (
	"time"

	"github.com/gogpu/tween/ease"
)

var linear = ease.Linear

// fakeHost is a minimal Host for in-package tests.
type fakeHost struct {
	now   time.Duration
	kinds map[ItemID]ItemKind
	pos   map[ItemID][2]int
	size  map[ItemID][2]int
	alpha map[ItemID]float64
	text  map[ItemID]float64
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		kinds: make(map[ItemID]ItemKind),
		pos:   make(map[ItemID][2]int),
		size:  make(map[ItemID][2]int),
		alpha: make(map[ItemID]float64),
		text:  make(map[ItemID]float64),
	}
}

func (h *fakeHost) Now() time.Duration              { return h.now }
func (h *fakeHost) ItemKind(id ItemID) ItemKind     { return h.kinds[id] }
func (h *fakeHost) SetPosition(id ItemID, x, y int) { h.pos[id] = [2]int{x, y} }

func (h *fakeHost) SetWidth(id ItemID, w int) {
	s := h.size[id]
	s[0] = w
	h.size[id] = s
}

func (h *fakeHost) SetHeight(id ItemID, v int) {
	s := h.size[id]
	s[1] = v
	h.size[id] = s
}

func (h *fakeHost) SetTextColorAlpha(id ItemID, a float64) { h.text[id] = a }
func (h *fakeHost) SetGenericAlpha(id ItemID, a float64)   { h.alpha[id] = a }
