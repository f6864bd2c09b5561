// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedupe

import (
	"github.com/pdiddy/citegraph/pkg/types"
)

// Index maps each corpus title to its CanonicalID. Built once over the
// sorted record sequence, read-only afterwards. Lookups are exact-string;
// similarity is applied only while building, between sort-adjacent titles.
type Index struct {
	byTitle map[string]types.CanonicalID
}

// BuildIndex assigns canonical identities over records already sorted
// ascending by title. Each record is compared only to its immediate
// predecessor: on exact equality or Similar it inherits the predecessor's
// already-resolved CanonicalID, so chains A≈B≈C merge transitively even
// though A and C are never compared directly. Otherwise the record's own
// Index becomes its CanonicalID.
//
// Comparing only adjacent records is an intentional O(n) simplification
// that relies on sort order placing near-duplicates next to each other.
// Similar titles separated by an intervening distinct title will not
// merge; that under-merge is a documented limitation of the heuristic.
func BuildIndex(records []types.PaperRecord) *Index {
	byTitle := make(map[string]types.CanonicalID, len(records))

	for i, rec := range records {
		if i > 0 {
			prev := records[i-1]
			if rec.Title == prev.Title || Similar(rec.Title, prev.Title) {
				byTitle[rec.Title] = byTitle[prev.Title]
				continue
			}
		}
		byTitle[rec.Title] = types.CanonicalID(rec.Index)
	}

	return &Index{byTitle: byTitle}
}

// Resolve returns the CanonicalID for an exact title. There is no
// similarity fallback here: citation resolution deliberately drops
// near-duplicate titles rather than merging them.
func (ix *Index) Resolve(title string) (types.CanonicalID, bool) {
	id, ok := ix.byTitle[title]
	return id, ok
}

// Len returns the number of distinct titles in the index.
func (ix *Index) Len() int {
	return len(ix.byTitle)
}
