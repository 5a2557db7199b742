package store

import "slices"

// Helpers below never write into their input slice; published snapshots share
// backing arrays with their successors.

func cloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	return slices.Clone(items)
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// appended returns a new slice holding items followed by v
func appended[T any](items []T, v T) []T {
	return append(slices.Clip(items), v)
}

// replacedAt returns a copy of items with position i set to v
func replacedAt[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

// partition returns the items to keep and the ids of the removed ones
func partition[T any](items []T, remove func(T) bool, idOf func(T) string) ([]T, []string) {
	kept := make([]T, 0, len(items))
	var removed []string
	for _, item := range items {
		if remove(item) {
			removed = append(removed, idOf(item))
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
