package form

import (
	"log"
	"sync"
)

// Store holds the field list and applies the builder's mutations to it.
//
// Every mutation replaces the whole list, and readers only ever receive deep
// copies, so a snapshot handed out earlier never changes underneath its
// holder. Lookups by an unknown id are no-ops.
type Store struct {
	gen    IdGenerator
	fields FieldList
	subs   []func(FieldList)
	mu     sync.RWMutex

	// notifyMu spans install and notify so subscribers see snapshots in
	// commit order. Subscribers must not mutate the store.
	notifyMu sync.Mutex
}

// NewStore creates an empty store. A nil generator falls back to UUIDs.
func NewStore(gen IdGenerator) *Store {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	return &Store{
		gen:    gen,
		fields: FieldList{},
	}
}

// Subscribe registers fn to receive the new snapshot after every mutation
// that changed the list. fn is called synchronously, one mutation at a time.
func (s *Store) Subscribe(fn func(FieldList)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// Fields returns a snapshot of the list.
func (s *Store) Fields() FieldList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fields.clone()
}

// Field returns a snapshot of the field with the given id.
func (s *Store) Field(id string) (FieldDefinition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.fields.indexOf(id)
	if i < 0 {
		return FieldDefinition{}, false
	}
	return s.fields[i].clone(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.fields)
}

// AddField appends a new field of the given kind with its default label and
// options, and returns a copy of it.
func (s *Store) AddField(kind Kind) FieldDefinition {
	field := newField(s.gen.Next(), kind)

	s.commit(func(next FieldList) (FieldList, bool) {
		return append(next, field), true
	})

	log.Printf("added %s field %s", kind, field.ID)
	return field.clone()
}

// UpdateLabel replaces the label of the field with the given id.
func (s *Store) UpdateLabel(id, label string) {
	s.commit(func(next FieldList) (FieldList, bool) {
		i := next.indexOf(id)
		if i < 0 {
			return next, false
		}
		next[i].Label = label
		return next, true
	})
}

// AddOption appends "Option n+1" to the options of a dropdown or radio
// field. Fields of other kinds never carry options, so for them, as for an
// unknown id, this is a no-op.
func (s *Store) AddOption(id string) {
	s.commit(func(next FieldList) (FieldList, bool) {
		i := next.indexOf(id)
		if i < 0 {
			return next, false
		}
		if !next[i].Kind.IsChoice() {
			log.Printf("ignored add option on %s field %s", next[i].Kind, id)
			return next, false
		}
		next[i].Options = append(next[i].Options, optionLabel(len(next[i].Options)))
		return next, true
	})
}

// commit applies mutate to a private copy of the list and installs the
// result when mutate reports a change.
func (s *Store) commit(mutate func(FieldList) (FieldList, bool)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next, changed := mutate(s.fields.clone())
	if !changed {
		s.mu.Unlock()
		return
	}
	s.fields = next
	subs := append([]func(FieldList){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.clone())
	}
}
