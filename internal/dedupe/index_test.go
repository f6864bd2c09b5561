// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedupe

import (
	"testing"

	"github.com/pdiddy/citegraph/pkg/types"
)

// sortedRecords builds PaperRecords with Index set to position, assuming
// the given titles are already in ascending order.
func sortedRecords(titles ...string) []types.PaperRecord {
	records := make([]types.PaperRecord, len(titles))
	for i, title := range titles {
		records[i] = types.PaperRecord{Index: i, Title: title}
	}
	return records
}

func TestBuildIndexMergesAdjacentVariants(t *testing.T) {
	ix := BuildIndex(sortedRecords(
		"Covid-19 study",
		"Covid-19 study update",
		"Zika outbreak",
	))

	first, ok := ix.Resolve("Covid-19 study")
	if !ok {
		t.Fatal("first title missing from index")
	}
	second, ok := ix.Resolve("Covid-19 study update")
	if !ok {
		t.Fatal("second title missing from index")
	}
	third, ok := ix.Resolve("Zika outbreak")
	if !ok {
		t.Fatal("third title missing from index")
	}

	if first != second {
		t.Errorf("similar adjacent titles got distinct ids: %d vs %d", first, second)
	}
	if first != 0 {
		t.Errorf("merged cluster id = %d, want 0 (earliest record)", first)
	}
	if third == first {
		t.Errorf("distinct title shares id %d with cluster", third)
	}
	if third != 2 {
		t.Errorf("distinct title id = %d, want its own index 2", third)
	}
}

func TestBuildIndexChainMergesTransitively(t *testing.T) {
	// A≈B and B≈C: C is never compared to A directly, but must still
	// resolve to A's id because B already did.
	ix := BuildIndex(sortedRecords(
		"Viral load",
		"Viral load in adults",
		"Viral load in adults and children",
	))

	for _, title := range []string{"Viral load", "Viral load in adults", "Viral load in adults and children"} {
		id, ok := ix.Resolve(title)
		if !ok {
			t.Fatalf("%q missing from index", title)
		}
		if id != 0 {
			t.Errorf("Resolve(%q) = %d, want 0", title, id)
		}
	}
}

func TestBuildIndexExactDuplicateTitles(t *testing.T) {
	ix := BuildIndex(sortedRecords(
		"Same title",
		"Same title",
		"Unrelated work on something else",
	))

	id, ok := ix.Resolve("Same title")
	if !ok {
		t.Fatal("duplicate title missing from index")
	}
	if id != 0 {
		t.Errorf("duplicate title id = %d, want 0", id)
	}
	if ix.Len() != 2 {
		t.Errorf("Len() = %d, want 2 distinct titles", ix.Len())
	}
}

func TestBuildIndexFirstRecordKeepsOwnIndex(t *testing.T) {
	ix := BuildIndex(sortedRecords("Only record in the corpus"))

	id, ok := ix.Resolve("Only record in the corpus")
	if !ok {
		t.Fatal("single record missing from index")
	}
	if id != 0 {
		t.Errorf("id = %d, want 0", id)
	}
}

func TestResolveIsExactMatchOnly(t *testing.T) {
	ix := BuildIndex(sortedRecords("Influenza transmission"))

	// Similar but not identical: must not resolve.
	if _, ok := ix.Resolve("Influenza transmission."); ok {
		t.Error("Resolve matched a merely similar title; lookups must be exact")
	}
}
