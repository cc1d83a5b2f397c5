package ledger

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// CategorySet holds the categories available for one transaction kind.
// It is a tagged variant: income and withdrawals use a flat label list,
// expenses use named groups of subcategory labels. Exactly one of Labels
// and Groups is set.
type CategorySet struct {
	Labels []string
	Groups map[string][]string
}

// Flat reports whether the set is a flat label list.
func (c CategorySet) Flat() bool {
	return c.Groups == nil
}

// GroupNames returns the group names in stable (sorted) order.
func (c CategorySet) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every leaf label in the set.
func (c CategorySet) All() []string {
	if c.Flat() {
		return slices.Clone(c.Labels)
	}
	var all []string
	for _, name := range c.GroupNames() {
		all = append(all, c.Groups[name]...)
	}
	return all
}

// Clone returns a deep copy of the set.
func (c CategorySet) Clone() CategorySet {
	if c.Flat() {
		return CategorySet{Labels: slices.Clone(c.Labels)}
	}
	groups := make(map[string][]string, len(c.Groups))
	for name, labels := range c.Groups {
		groups[name] = slices.Clone(labels)
	}
	return CategorySet{Groups: groups}
}

// MarshalJSON encodes the set in the snapshot format: a JSON array for
// flat sets, an object of group name to label array for grouped sets.
func (c CategorySet) MarshalJSON() ([]byte, error) {
	if c.Flat() {
		if c.Labels == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.Labels)
	}
	return json.Marshal(c.Groups)
}

// UnmarshalJSON resolves the stored shape once, at decode time.
func (c *CategorySet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err == nil {
		*c = CategorySet{Labels: labels}
		return nil
	}
	var groups map[string][]string
	if err := json.Unmarshal(data, &groups); err != nil {
		return fmt.Errorf("category set is neither a list nor a group map: %w", err)
	}
	*c = CategorySet{Groups: groups}
	return nil
}

// Taxonomy maps each non-transfer transaction kind to its category set.
type Taxonomy map[Kind]CategorySet

// Kinds returns the taxonomy kinds in display order.
func (tx Taxonomy) Kinds() []Kind {
	order := []Kind{KindIncome, KindNecessity, KindExtra, KindWithdrawal}
	kinds := make([]Kind, 0, len(order))
	for _, k := range order {
		if _, ok := tx[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// AllLabels returns every leaf category label across all kinds, in
// display order. Used to populate single-category chart selectors.
func (tx Taxonomy) AllLabels() []string {
	var labels []string
	for _, k := range tx.Kinds() {
		labels = append(labels, tx[k].All()...)
	}
	return labels
}

// Clone returns a deep copy of the taxonomy.
func (tx Taxonomy) Clone() Taxonomy {
	out := make(Taxonomy, len(tx))
	for k, set := range tx {
		out[k] = set.Clone()
	}
	return out
}
