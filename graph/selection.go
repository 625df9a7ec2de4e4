package graph

import (
	"github.com/google/uuid"
)

// EntityKind scopes selection ids so a node and a link with the same key never collide
type EntityKind string

const (
	KindNode EntityKind = "node"
	KindLink EntityKind = "link"
)

// selectionNamespace is the UUID namespace all selection ids are derived in.
// Changing it invalidates every owner reference in saved reports.
var selectionNamespace = uuid.MustParse("5b0c3a5e-6f1d-4c1e-9a53-2c1f4e8b7d10")

// SelectionID is an opaque, stable owner reference for a data entity.
// The same entity key yields the same id across refresh cycles.
type SelectionID string

// NewSelectionID derives a deterministic selection id from an entity kind and key
func NewSelectionID(kind EntityKind, key string) SelectionID {
	return SelectionID(uuid.NewSHA1(selectionNamespace, []byte(string(kind)+":"+key)).String())
}

// IsZero reports whether the id is unset
func (id SelectionID) IsZero() bool {
	return id == ""
}

// WildcardMatching selects which data-view instances a rule-based selector applies to
type WildcardMatching string

const (
	MatchInstancesAndTotals WildcardMatching = "instancesAndTotals"
	MatchInstancesOnly      WildcardMatching = "instancesOnly"
	MatchTotalsOnly         WildcardMatching = "totalsOnly"
)

// Selector routes an edited control value back to the entity (or entities) it targets.
// Exactly one of ID or Wildcard is set.
type Selector struct {
	ID       SelectionID      `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Wildcard WildcardMatching `json:"wildcard,omitempty" yaml:"wildcard,omitempty" toml:"wildcard,omitempty"`
}

// NormalizeSelector turns an entity selection id into a selector attached to a control.
// Returns nil for an unset id so the control targets no particular entity.
func NormalizeSelector(id SelectionID) *Selector {
	if id.IsZero() {
		return nil
	}
	return &Selector{ID: id}
}

// WildcardSelector returns a rule-based selector not tied to any single entity
func WildcardSelector(matching WildcardMatching) *Selector {
	return &Selector{Wildcard: matching}
}

// IsWildcard reports whether the selector targets a rule rather than one entity
func (s *Selector) IsWildcard() bool {
	return s != nil && s.Wildcard != ""
}

// Matches reports whether the selector targets the given entity
func (s *Selector) Matches(id SelectionID) bool {
	if s == nil {
		return false
	}
	return s.IsWildcard() || s.ID == id
}
