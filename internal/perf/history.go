// Package perf keeps the rolling frame statistics shown in the settings panel.
package perf

import "gonum.org/v1/gonum/stat"

// FrameHistory is a bounded, time-windowed record of frame costs.
// Times are in seconds on any monotonic clock.
type FrameHistory struct {
	maxLen int
	maxAge float64
	times  []float64
	values []float64
}

func NewFrameHistory(maxLen int, maxAge float64) *FrameHistory {
	if maxLen < 1 {
		maxLen = 1
	}
	return &FrameHistory{
		maxLen: maxLen,
		maxAge: maxAge,
		times:  make([]float64, 0, maxLen),
		values: make([]float64, 0, maxLen),
	}
}

// Add records a frame that finished at now and cost frameTime seconds.
func (h *FrameHistory) Add(now, frameTime float64) {
	if n := len(h.times); n > 0 && now < h.times[n-1] {
		h.Clear()
	}
	h.times = append(h.times, now)
	h.values = append(h.values, frameTime)
	h.flush(now)
}

func (h *FrameHistory) flush(now float64) {
	drop := 0
	for drop < len(h.times) && (len(h.times)-drop > h.maxLen || now-h.times[drop] > h.maxAge) {
		drop++
	}
	if drop == 0 {
		return
	}
	h.times = append(h.times[:0], h.times[drop:]...)
	h.values = append(h.values[:0], h.values[drop:]...)
}

func (h *FrameHistory) Len() int { return len(h.times) }

func (h *FrameHistory) Clear() {
	h.times = h.times[:0]
	h.values = h.values[:0]
}

// Average is the mean frame cost.
func (h *FrameHistory) Average() (float64, bool) {
	if len(h.values) == 0 {
		return 0, false
	}
	return stat.Mean(h.values, nil), true
}

// MeanTimeInterval is the mean spacing between recorded frames.
func (h *FrameHistory) MeanTimeInterval() (float64, bool) {
	n := len(h.times)
	if n < 2 {
		return 0, false
	}
	return (h.times[n-1] - h.times[0]) / float64(n-1), true
}

// FPS is 1 / MeanTimeInterval, or 0 when undefined.
func (h *FrameHistory) FPS() float64 {
	dt, ok := h.MeanTimeInterval()
	if !ok || dt <= 0 {
		return 0
	}
	return 1 / dt
}

// Values returns a copy of the recorded frame costs, oldest first.
func (h *FrameHistory) Values() []float64 {
	out := make([]float64, len(h.values))
	copy(out, h.values)
	return out
}
