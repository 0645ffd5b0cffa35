package internal

// Deduplicator suppresses messages whose identifier was already emitted for
// a given file. Identifiers are scoped per file, not globally: the same id
// in two different files is two distinct messages.
type Deduplicator struct {
	seen map[string]map[string]bool
}

// NewDeduplicator creates a new Deduplicator
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]map[string]bool)}
}

// Filter returns the messages not previously emitted for path and records
// their identifiers. Messages without an id share a single slot per file,
// so only the first id-less message of a file gets through.
func (d *Deduplicator) Filter(path string, msgs []Message) []Message {
	ids := d.seen[path]
	if ids == nil {
		ids = make(map[string]bool)
		d.seen[path] = ids
	}

	var fresh []Message
	for _, msg := range msgs {
		if ids[msg.ID] {
			continue
		}
		ids[msg.ID] = true
		fresh = append(fresh, msg)
	}
	return fresh
}
