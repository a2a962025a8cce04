package model

import "time"

const defaultHistoryCap = 60

// Field names accepted by RefreshHistory.Values.
const (
	FieldActiveJobs  = "activeJobs"
	FieldSuccessRate = "successRate"
	FieldStorageUsed = "storageUsed"
)

// RefreshPoint is a single timestamped sample taken from a successful cycle.
type RefreshPoint struct {
	Timestamp     time.Time
	ActiveJobs    float64
	SuccessRate   float64
	StorageUsedGB float64
}

// PointFromView samples the card metrics of a loaded view.
func PointFromView(v *DashboardView) RefreshPoint {
	return RefreshPoint{
		Timestamp:     v.FetchedAt,
		ActiveJobs:    float64(v.Metrics.ActiveJobs),
		SuccessRate:   v.Metrics.SuccessRate,
		StorageUsedGB: v.Metrics.StorageUsedGB,
	}
}

// RefreshHistory is a fixed-size ring buffer of RefreshPoints.
// When the buffer is full, new pushes overwrite the oldest entry.
type RefreshHistory struct {
	buf  []RefreshPoint
	head int // index of the next write position
	size int // number of valid entries
}

// NewRefreshHistory creates a RefreshHistory with the given capacity.
// If capacity <= 0, the default of 60 is used.
func NewRefreshHistory(capacity int) *RefreshHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCap
	}
	return &RefreshHistory{
		buf: make([]RefreshPoint, capacity),
	}
}

// Push appends a new point to the history, overwriting the oldest if full.
func (h *RefreshHistory) Push(p RefreshPoint) {
	h.buf[h.head] = p
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Len returns the number of valid entries in the history.
func (h *RefreshHistory) Len() int {
	return h.size
}

// Clear resets the history to empty.
func (h *RefreshHistory) Clear() {
	h.head = 0
	h.size = 0
}

// Values returns the named field in chronological order (oldest first).
// Unknown field names yield zeros.
func (h *RefreshHistory) Values(field string) []float64 {
	out := make([]float64, h.size)
	// oldest entry sits at (head - size + cap) % cap
	start := (h.head - h.size + len(h.buf)) % len(h.buf)
	for i := 0; i < h.size; i++ {
		p := h.buf[(start+i)%len(h.buf)]
		switch field {
		case FieldActiveJobs:
			out[i] = p.ActiveJobs
		case FieldSuccessRate:
			out[i] = p.SuccessRate
		case FieldStorageUsed:
			out[i] = p.StorageUsedGB
		}
	}
	return out
}
