package domain

import "sort"

// CatalogueInfo is a snapshot of a promotion's scope: category name to the
// set of opaque entity ids it covers. A missing category reads as the empty
// set. Duplicate ids carry no meaning.
type CatalogueInfo map[string][]string

// Added returns the ids present under key in current but not in previous.
// The result is sorted; set membership, not order, is the semantic content,
// but a stable order keeps golden files reproducible.
func Added(previous, current CatalogueInfo, key string) []string {
	prev := make(map[string]struct{}, len(previous[key]))
	for _, id := range previous[key] {
		prev[id] = struct{}{}
	}
	added := make([]string, 0)
	seen := make(map[string]struct{})
	for _, id := range current[key] {
		if _, ok := prev[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		added = append(added, id)
	}
	sort.Strings(added)
	return added
}

// Removed is Added with the snapshots swapped. Defining it by symmetry keeps
// the removed(prev, curr) == added(curr, prev) property true by construction.
func Removed(previous, current CatalogueInfo, key string) []string {
	return Added(current, previous, key)
}
