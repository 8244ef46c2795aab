package walk

import "sort"

// Sort orders entries by name, byte-wise. With dirsFirst, entries classified
// as directories come before all others. Names are unique within a listing,
// so the order is total.
func Sort(entries []Entry, dirsFirst bool) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if dirsFirst && a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
}
