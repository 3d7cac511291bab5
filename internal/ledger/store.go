package ledger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store owns the ordered line-item collection for one form instance.
// All operations are total: bad input degrades, it never errors. The
// collection never shrinks below one row — the portal always shows at
// least one editable line.
type Store struct {
	rules  RuleSet
	items  []*Item
	logger *zap.Logger
}

// NewStore creates a store holding a single blank item.
func NewStore(rules RuleSet, logger *zap.Logger) *Store {
	s := &Store{
		rules:  rules,
		logger: logger,
	}
	s.items = []*Item{s.newItem()}
	return s
}

func (s *Store) newItem() *Item {
	it := &Item{ID: uuid.NewString()}
	// Derive once so zero-valued rows carry consistent derived fields.
	s.rules.Derive(it)
	return it
}

// Rules returns the rule set the store derives with.
func (s *Store) Rules() RuleSet {
	return s.rules
}

// Add appends a fresh blank item and returns it.
func (s *Store) Add() *Item {
	it := s.newItem()
	s.items = append(s.items, it)
	s.logger.Debug("Line item added",
		zap.String("item_id", it.ID),
		zap.Int("count", len(s.items)))
	return it
}

// Remove deletes the item with the given identity. Removing the last
// remaining item is a silent no-op: a UX guard, not an error.
func (s *Store) Remove(id string) {
	if len(s.items) <= 1 {
		s.logger.Debug("Remove ignored, collection at minimum size",
			zap.String("item_id", id))
		return
	}
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.logger.Debug("Line item removed",
				zap.String("item_id", id),
				zap.Int("count", len(s.items)))
			return
		}
	}
}

// Update replaces one raw field on the item matching id, re-deriving the
// row when the field is a derivation input. Unknown identities and
// unrecognized fields are no-ops.
func (s *Store) Update(id string, f Field, value string) {
	if !f.IsValid() {
		s.logger.Warn("Update ignored, unrecognized field",
			zap.String("field", string(f)))
		return
	}
	it := s.find(id)
	if it == nil {
		return
	}
	it.setRaw(f, value)
	if s.rules.IsInput(f) {
		s.rules.Derive(it)
	}
}

func (s *Store) find(id string) *Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Get returns the item with the given identity, or nil.
func (s *Store) Get(id string) *Item {
	return s.find(id)
}

// Items returns the collection in order. Callers must not reorder it.
func (s *Store) Items() []*Item {
	return s.items
}

// Len returns the current collection size.
func (s *Store) Len() int {
	return len(s.items)
}

// Reset restores the initial single-blank-item shape.
func (s *Store) Reset() {
	s.items = []*Item{s.newItem()}
}

// ParseFailures collects strict-policy parse failures across all items,
// keyed by item identity. Empty under the coerce policy.
func (s *Store) ParseFailures() map[string][]Field {
	failures := make(map[string][]Field)
	for _, it := range s.items {
		if len(it.ParseFailures) > 0 {
			failures[it.ID] = it.ParseFailures
		}
	}
	return failures
}
