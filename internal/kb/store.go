package kb

import "strings"

// Store maps tags to knowledge snippets and remembers the order in which
// tags were first added, so list views stay stable across overwrites.
// Not safe for concurrent use; the app is single-actor by design.
type Store struct {
	snippets map[string]string
	order    []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{snippets: make(map[string]string)}
}

// Put inserts or overwrites the snippet for tag. The tag is trimmed of
// surrounding whitespace. Overwriting keeps the tag's original position.
func (s *Store) Put(tag, text string) {
	tag = strings.TrimSpace(tag)
	if _, ok := s.snippets[tag]; !ok {
		s.order = append(s.order, tag)
	}
	s.snippets[tag] = text
}

// Get returns the snippet for tag.
func (s *Store) Get(tag string) (string, bool) {
	text, ok := s.snippets[tag]
	return text, ok
}

// Remove deletes tag and returns the snippet it held.
func (s *Store) Remove(tag string) (string, bool) {
	text, ok := s.snippets[tag]
	if !ok {
		return "", false
	}
	delete(s.snippets, tag)
	for i, t := range s.order {
		if t == tag {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return text, true
}

// Tags returns all tags in insertion order.
func (s *Store) Tags() []string {
	tags := make([]string, len(s.order))
	copy(tags, s.order)
	return tags
}

// Len returns the number of stored snippets.
func (s *Store) Len() int {
	return len(s.snippets)
}
