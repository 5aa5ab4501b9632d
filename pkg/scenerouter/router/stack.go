package router

// Stack is the activation history of router instances. Each entry is the
// ID of the router that navigated forward; the most recent is on top and
// is the one back navigation should reach first.
type Stack struct {
	entries []string
}

// NewStack creates a new empty activation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]string, 0),
	}
}

// Push adds a router ID on top of the stack.
// Called when a router navigates forward.
func (s *Stack) Push(id string) {
	s.entries = append(s.entries, id)
}

// Pop removes and returns the top entry.
// Returns false if the stack is empty.
func (s *Stack) Pop() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	id := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return id, true
}

// Peek returns the top entry without removing it.
// Returns false if the stack is empty.
func (s *Stack) Peek() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[len(s.entries)-1], true
}

// RemoveLast removes the most recent entry for id.
// Returns false if id is not on the stack.
func (s *Stack) RemoveLast(id string) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i] == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll drops every entry for id and returns how many were removed.
func (s *Stack) RemoveAll(id string) int {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e != id {
			kept = append(kept, e)
		}
	}
	removed := len(s.entries) - len(kept)
	s.entries = kept
	return removed
}

// Entries returns a copy of the stack, bottom first.
func (s *Stack) Entries() []string {
	return append([]string(nil), s.entries...)
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
