package internal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// pollInterval is the delay between scans of the projects directory.
const pollInterval = 100 * time.Millisecond

var waitingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("11"))

// Watcher drives the poll loop: locate conversation files, extract each
// file's delta, deduplicate and render. All state (offsets, seen ids) is
// owned here and nothing survives the process.
type Watcher struct {
	root     string
	filter   string
	tracker  *OffsetTracker
	dedupe   *Deduplicator
	renderer *Renderer

	initialLoad bool
}

// NewWatcher creates a Watcher over root. filter optionally restricts
// projects by a case-insensitive name substring.
func NewWatcher(root, filter string, renderer *Renderer) *Watcher {
	return &Watcher{
		root:        root,
		filter:      filter,
		tracker:     NewOffsetTracker(),
		dedupe:      NewDeduplicator(),
		renderer:    renderer,
		initialLoad: true,
	}
}

// Run polls every pollInterval until ctx is cancelled. Cancellation is a
// graceful stop, not an error.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if err := w.Cycle(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Cycle performs one pass over every conversation file. Projects are
// visited in sorted order and files within a project in discovery order,
// so interleaved output is stable within a cycle.
func (w *Watcher) Cycle() error {
	files, err := FindConversationFiles(w.root, w.filter)
	if err != nil {
		return err
	}

	if w.initialLoad && len(files) == 0 {
		fmt.Fprintln(w.renderer.out, waitingStyle.Render("No conversations found. Waiting..."))
		w.initialLoad = false
	}

	projects := make([]string, 0, len(files))
	for project := range files {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	for _, project := range projects {
		for _, path := range files[project] {
			// first sighting only establishes the baseline
			if w.tracker.Baseline(path) {
				continue
			}
			msgs, next := ExtractMessages(path, w.tracker.Offset(path))
			w.tracker.Advance(path, next)
			for _, msg := range w.dedupe.Filter(path, msgs) {
				w.initialLoad = false
				w.renderer.Render(project, msg)
			}
		}
	}
	return nil
}
