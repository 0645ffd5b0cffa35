package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOffsetTracker_Baseline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	if err := os.WriteFile(path, []byte("existing content\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tracker := NewOffsetTracker()

	if !tracker.Baseline(path) {
		t.Error("Baseline() = false on first sighting, want true")
	}
	if got, want := tracker.Offset(path), int64(len("existing content\n")); got != want {
		t.Errorf("Offset() = %d after baseline, want %d (end of file)", got, want)
	}
	if tracker.Baseline(path) {
		t.Error("Baseline() = true on second sighting, want false")
	}
}

func TestOffsetTracker_Baseline_MissingFile(t *testing.T) {
	tracker := NewOffsetTracker()
	path := filepath.Join(t.TempDir(), "gone.jsonl")

	if !tracker.Baseline(path) {
		t.Error("Baseline() = false for unreadable file, want true (skip this cycle)")
	}
	// still untracked, so the next cycle retries the baseline
	if !tracker.Baseline(path) {
		t.Error("Baseline() = false on retry of unreadable file, want true")
	}
}

func TestOffsetTracker_Advance(t *testing.T) {
	tests := []struct {
		name    string
		updates []int64
		want    int64
	}{
		{
			name:    "advances forward",
			updates: []int64{10, 25, 40},
			want:    40,
		},
		{
			name:    "ignores regressions",
			updates: []int64{40, 10},
			want:    40,
		},
		{
			name:    "ignores equal offset",
			updates: []int64{40, 40},
			want:    40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewOffsetTracker()
			for _, off := range tt.updates {
				tracker.Advance("file", off)
			}
			if got := tracker.Offset("file"); got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOffsetTracker_Offset_Untracked(t *testing.T) {
	tracker := NewOffsetTracker()
	if got := tracker.Offset("unknown"); got != 0 {
		t.Errorf("Offset() = %d for untracked file, want 0", got)
	}
}
