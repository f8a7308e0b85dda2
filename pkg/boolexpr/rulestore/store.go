// Package rulestore provides persistent storage for rule definitions.
// Stored rules are plain source text; compilation happens on load, so
// a definition that no longer parses surfaces as a load error rather
// than a corrupt set.
package rulestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/boolexpr/pkg/boolexpr/ruleset"
)

// Store persists rule definitions grouped into named sets.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a rule definition within a set.
	// Overwrites the source if (set, name) already exists; the rule ID
	// assigned on first save is preserved.
	Save(set, name, source string) error

	// Load retrieves a single definition.
	// Returns ErrNotFound if the definition doesn't exist.
	Load(set, name string) (Definition, error)

	// List returns all definitions in a set, ordered by name.
	// Returns an empty slice (not an error) if the set is empty.
	List(set string) ([]Definition, error)

	// Delete removes a definition.
	// Returns nil if the definition doesn't exist.
	Delete(set, name string) error

	// DeleteSet removes every definition in a set.
	// Returns nil if the set is empty.
	DeleteSet(set string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Definition is a stored rule before compilation.
type Definition struct {
	ID        string
	Set       string
	Name      string
	Source    string
	UpdatedAt time.Time
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a definition doesn't exist.
	ErrNotFound = errors.New("rule definition not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("rule store closed")
)

// LoadSet reads every definition in a set and compiles it into a
// ruleset.Set. A definition that fails to compile fails the whole
// load.
func LoadSet(s Store, set string) (*ruleset.Set, error) {
	defs, err := s.List(set)
	if err != nil {
		return nil, fmt.Errorf("list rule set %q: %w", set, err)
	}

	rules := ruleset.New()
	for _, def := range defs {
		if _, err := rules.Add(def.Name, def.Source); err != nil {
			return nil, fmt.Errorf("load rule set %q: %w", set, err)
		}
	}
	return rules, nil
}
