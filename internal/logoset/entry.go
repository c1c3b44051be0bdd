package logoset

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Entry describes one displayable logo.
type Entry struct {
	Name  string  `json:"name"`
	Logo  string  `json:"logo"`
	Glow  bool    `json:"glow,omitempty"`
	Scale float64 `json:"scale,omitempty"`
}

// Validate reports the first constraint violation, if any.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("entry name is empty")
	}
	if strings.TrimSpace(e.Logo) == "" {
		return fmt.Errorf("entry %q has no logo source", e.Name)
	}
	if e.Scale != 0 {
		if e.Scale < 0 || math.IsInf(e.Scale, 0) || math.IsNaN(e.Scale) {
			return fmt.Errorf("entry %q has invalid scale %v", e.Name, e.Scale)
		}
	}
	return nil
}

// EffectiveScale returns the size multiplier, defaulting to 1.0 when unset.
func (e Entry) EffectiveScale() float64 {
	if e.Scale == 0 {
		return 1.0
	}
	return e.Scale
}

// Parse decodes a JSON array of entries. The parse is all-or-nothing: a
// malformed document or a single invalid entry fails the whole list so a
// broken payload is never partially applied.
func Parse(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse logo data: %w", err)
	}
	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("logo entry %d: %w", i, err)
		}
	}
	return entries, nil
}
