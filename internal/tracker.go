package internal

import "os"

// OffsetTracker remembers how much of each conversation file has been
// consumed. Offsets live in memory only and never decrease.
type OffsetTracker struct {
	offsets map[string]int64
}

// NewOffsetTracker creates an empty OffsetTracker
func NewOffsetTracker() *OffsetTracker {
	return &OffsetTracker{offsets: make(map[string]int64)}
}

// Baseline records the current end of file for a path seen for the first
// time and reports whether it did so. Existing content is never replayed:
// the caller skips the file for the cycle in which it was baselined. If the
// file cannot be stat'd it stays untracked and the next cycle retries.
func (t *OffsetTracker) Baseline(path string) bool {
	if _, ok := t.offsets[path]; ok {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	t.offsets[path] = info.Size()
	return true
}

// Offset returns the stored offset for path (zero if untracked).
func (t *OffsetTracker) Offset(path string) int64 {
	return t.offsets[path]
}

// Advance moves the stored offset forward. Regressions are ignored, keeping
// the offset monotonically non-decreasing.
func (t *OffsetTracker) Advance(path string, offset int64) {
	if offset > t.offsets[path] {
		t.offsets[path] = offset
	}
}
