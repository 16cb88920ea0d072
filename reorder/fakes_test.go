package reorder

import (
	"fmt"
	"time"
)

const (
	testHeaderHeight = 20.0
	testRowHeight    = 10.0
	testWidth        = 100.0
)

// fakeHost lays out sections vertically: a header followed by fixed-height
// rows. Visual row state is keyed by row name so it follows moves.
type fakeHost struct {
	sections [][]string

	hidden map[string]bool
	alpha  map[string]float64

	hideCalls   map[string]int
	revealCalls map[string]int
	moves       [][2]RowIndex

	live     map[*fakeProxy]bool
	created  int
	removed  int
	maxLive  int
	noFrames bool
}

func newFakeHost(sections ...[]string) *fakeHost {
	return &fakeHost{
		sections:    sections,
		hidden:      map[string]bool{},
		alpha:       map[string]float64{},
		hideCalls:   map[string]int{},
		revealCalls: map[string]int{},
		live:        map[*fakeProxy]bool{},
	}
}

func newFakeHostRows(counts ...int) *fakeHost {
	sections := make([][]string, len(counts))
	for s, n := range counts {
		for r := 0; r < n; r++ {
			sections[s] = append(sections[s], fmt.Sprintf("s%dr%d", s, r))
		}
	}
	return newFakeHost(sections...)
}

func (h *fakeHost) sectionTop(section int) float64 {
	y := 0.0
	for s := 0; s < section; s++ {
		y += testHeaderHeight + float64(len(h.sections[s]))*testRowHeight
	}
	return y
}

func (h *fakeHost) name(index RowIndex) string {
	if index.Section < 0 || index.Section >= len(h.sections) {
		return ""
	}
	rows := h.sections[index.Section]
	if index.Row < 0 || index.Row >= len(rows) {
		return ""
	}
	return rows[index.Row]
}

// rowY returns a pointer y inside the row at the given offset from its top.
func (h *fakeHost) rowY(index RowIndex, offset float64) float64 {
	return h.sectionTop(index.Section) + testHeaderHeight + float64(index.Row)*testRowHeight + offset
}

func (h *fakeHost) IndexAt(p Point) (RowIndex, bool) {
	if p.X < 0 || p.X >= testWidth {
		return RowIndex{}, false
	}
	for s, rows := range h.sections {
		top := h.sectionTop(s) + testHeaderHeight
		for r := range rows {
			y := top + float64(r)*testRowHeight
			if p.Y >= y && p.Y < y+testRowHeight {
				return RowIndex{Section: s, Row: r}, true
			}
		}
	}
	return RowIndex{}, false
}

func (h *fakeHost) RowFrame(index RowIndex) (Rect, bool) {
	if h.noFrames || h.name(index) == "" {
		return Rect{}, false
	}
	return Rect{X: 0, Y: h.rowY(index, 0), Width: testWidth, Height: testRowHeight}, true
}

func (h *fakeHost) HeaderFrame(section int) (Rect, bool) {
	if section < 0 || section >= len(h.sections) {
		return Rect{}, false
	}
	return Rect{X: 0, Y: h.sectionTop(section), Width: testWidth, Height: testHeaderHeight}, true
}

func (h *fakeHost) MoveRow(from, to RowIndex) {
	h.moves = append(h.moves, [2]RowIndex{from, to})
	name := h.sections[from.Section][from.Row]
	rows := append(h.sections[from.Section][:from.Row:from.Row], h.sections[from.Section][from.Row+1:]...)
	h.sections[from.Section] = rows
	rows = h.sections[to.Section]
	rows = append(rows[:to.Row], append([]string{name}, rows[to.Row:]...)...)
	h.sections[to.Section] = rows
}

func (h *fakeHost) Snapshot(index RowIndex) (ProxyView, bool) {
	frame, ok := h.RowFrame(index)
	if !ok {
		return nil, false
	}
	h.created++
	return &fakeProxy{frame: frame, alpha: 1, scale: 1}, true
}

func (h *fakeHost) AddOverlay(view ProxyView) {
	h.live[view.(*fakeProxy)] = true
	if len(h.live) > h.maxLive {
		h.maxLive = len(h.live)
	}
}

func (h *fakeHost) RemoveOverlay(view ProxyView) {
	delete(h.live, view.(*fakeProxy))
	h.removed++
}

func (h *fakeHost) SetRowHidden(index RowIndex, hidden bool) {
	name := h.name(index)
	h.hidden[name] = hidden
	if hidden {
		h.hideCalls[name]++
	} else {
		h.revealCalls[name]++
	}
}

func (h *fakeHost) SetRowAlpha(index RowIndex, alpha float64) {
	h.alpha[h.name(index)] = alpha
}

type fakeProxy struct {
	frame Rect
	alpha float64
	scale float64
}

func (p *fakeProxy) Frame() Rect { return p.frame }

func (p *fakeProxy) SetCenter(c Point) {
	p.frame.X = c.X - p.frame.Width/2
	p.frame.Y = c.Y - p.frame.Height/2
}

func (p *fakeProxy) SetAlpha(alpha float64) { p.alpha = alpha }
func (p *fakeProxy) SetScale(scale float64) { p.scale = scale }

type animation struct {
	duration   time.Duration
	step       func(float64)
	completion func()
	done       bool
}

// manualAnimator queues animations until the test completes them.
type manualAnimator struct {
	queue []*animation
}

func (a *manualAnimator) Animate(d time.Duration, step func(float64), completion func()) {
	a.queue = append(a.queue, &animation{duration: d, step: step, completion: completion})
}

func (a *manualAnimator) finish(i int) {
	anim := a.queue[i]
	if anim.done {
		return
	}
	anim.done = true
	anim.step(1)
	if anim.completion != nil {
		anim.completion()
	}
}

func (a *manualAnimator) finishAll() {
	for i := 0; i < len(a.queue); i++ {
		a.finish(i)
	}
}

func (a *manualAnimator) pending() int {
	n := 0
	for _, anim := range a.queue {
		if !anim.done {
			n++
		}
	}
	return n
}

// recorder logs every hook call as a string.
type recorder struct {
	NopListener
	events   []string
	veto     map[RowIndex]bool
	disallow map[RowIndex]bool
}

func newRecorder() *recorder {
	return &recorder{veto: map[RowIndex]bool{}, disallow: map[RowIndex]bool{}}
}

func (r *recorder) StartReorderingRow(index RowIndex) bool {
	r.events = append(r.events, "start "+index.String())
	return !r.veto[index]
}

func (r *recorder) AllowChangingRow(index RowIndex) bool {
	r.events = append(r.events, "allow "+index.String())
	return !r.disallow[index]
}

func (r *recorder) PositionChanged(current, proposed RowIndex) {
	r.events = append(r.events, "changed "+current.String()+"->"+proposed.String())
}

func (r *recorder) ReorderFinished(initial, final RowIndex) {
	r.events = append(r.events, "finished "+initial.String()+"->"+final.String())
}

func (r *recorder) OverlappedIndex(initial, current, hovered *RowIndex, overHeader bool) {
	r.events = append(r.events, fmt.Sprintf("overlap %s %s %s %t", fmtIndex(initial), fmtIndex(current), fmtIndex(hovered), overHeader))
}

func (r *recorder) GestureEndedOnIndex(initial, end RowIndex) {
	r.events = append(r.events, "ended-on-index "+initial.String()+"->"+end.String())
}

func (r *recorder) GestureEndedOnHeader(initial RowIndex) {
	r.events = append(r.events, "ended-on-header "+initial.String())
}

func (r *recorder) has(event string) bool {
	for _, e := range r.events {
		if e == event {
			return true
		}
	}
	return false
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func fmtIndex(i *RowIndex) string {
	if i == nil {
		return "nil"
	}
	return i.String()
}
