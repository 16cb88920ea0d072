package tview

import (
	"time"

	"github.com/xqrs/tview-reorder/reorder"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

// fakeScheduler records timers and runs them only when told to.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return func() bool {
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// fire runs every pending timer.
func (s *fakeScheduler) fire() {
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// fakeClock runs animations to completion immediately.
type fakeClock struct {
	fakeScheduler
	animations []time.Duration
}

func (c *fakeClock) Animate(d time.Duration, step func(float64), completion func()) {
	c.animations = append(c.animations, d)
	if step != nil {
		step(1)
	}
	if completion != nil {
		completion()
	}
}

type gestureEvent struct {
	phase reorder.Phase
	p     reorder.Point
}

type gestureRecorder struct {
	events []gestureEvent
}

func (r *gestureRecorder) handle(phase reorder.Phase, p reorder.Point) {
	r.events = append(r.events, gestureEvent{phase: phase, p: p})
}

func (r *gestureRecorder) phases() []reorder.Phase {
	phases := make([]reorder.Phase, len(r.events))
	for i, e := range r.events {
		phases[i] = e.phase
	}
	return phases
}

// newTestList returns a 20x12 list laid out as:
//
//	0-2   header A
//	3     a0
//	4-5   a1 / sub
//	6     a2
//	7-9   header B
//	10    b0
//	11    b1
func newTestList() *SectionList {
	list := NewSectionList()
	list.SetSections([]Section{
		{Title: "A", Rows: []SectionRow{{MainText: "a0"}, {MainText: "a1", SecondaryText: "sub"}, {MainText: "a2"}}},
		{Title: "B", Rows: []SectionRow{{MainText: "b0"}, {MainText: "b1"}}},
	})
	list.SetRect(0, 0, 20, 12)
	return list
}

func rowTexts(list *SectionList, section int) []string {
	var texts []string
	for _, row := range list.Sections()[section].Rows {
		texts = append(texts, row.MainText)
	}
	return texts
}
