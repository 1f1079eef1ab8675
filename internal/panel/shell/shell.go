// Package shell maps section ids to the panel's sections and tracks the
// active one.
package shell

import (
	"context"
	"sync"
)

const DefaultSection = "dashboard"

// Section is one screen of the panel.
type Section interface {
	LoadAll(ctx context.Context) error
	Snapshot() any
}

// Entry registers a section under an id with a display title.
type Entry struct {
	ID      string
	Title   string
	Section Section
}

// Shell holds the active section. Selection lives only as long as the
// Shell does.
type Shell struct {
	entries []Entry
	byID    map[string]int

	mu     sync.Mutex
	active string
}

// New panics if entries lack DefaultSection or repeat an id.
func New(entries ...Entry) *Shell {
	s := &Shell{entries: entries, byID: make(map[string]int, len(entries))}
	for i, e := range entries {
		if _, dup := s.byID[e.ID]; dup {
			panic("shell: duplicate section " + e.ID)
		}
		s.byID[e.ID] = i
	}
	if _, ok := s.byID[DefaultSection]; !ok {
		panic("shell: no " + DefaultSection + " section")
	}
	s.active = DefaultSection
	return s
}

// Select activates id. Unknown ids select the dashboard. It returns the id
// actually selected.
func (s *Shell) Select(id string) string {
	if _, ok := s.byID[id]; !ok {
		id = DefaultSection
	}
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
	return id
}

func (s *Shell) Active() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.byID[s.active]]
}

// Open selects id and loads its section.
func (s *Shell) Open(ctx context.Context, id string) (Entry, error) {
	s.Select(id)
	e := s.Active()
	return e, e.Section.LoadAll(ctx)
}

// Lookup returns the section registered under id, without falling back.
func (s *Shell) Lookup(id string) (Entry, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Entries lists the sections in menu order.
func (s *Shell) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
