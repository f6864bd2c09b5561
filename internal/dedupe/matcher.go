// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe merges near-duplicate paper titles into canonical
// identities. The corpus contains the same work under slightly different
// titles (preprints, trailing punctuation, truncations); dedupe assigns
// each title cluster a single representative CanonicalID.
package dedupe

import "strings"

// replyMarker flags reply/erratum papers, which share a prefix with the
// work they respond to but must never merge with it.
const replyMarker = "reply"

// maxLengthDelta is the largest length difference, in bytes, at which two
// titles can still be considered variants of each other.
const maxLengthDelta = 20

// Similar reports whether two titles denote the same paper. Both inputs
// are lowercased and trimmed; the shorter must be an exact prefix of the
// longer and the length difference must not exceed maxLengthDelta.
// If exactly one title contains "reply" the two never match.
// Symmetric and deterministic.
func Similar(a, b string) bool {
	ta := strings.TrimSpace(strings.ToLower(a))
	tb := strings.TrimSpace(strings.ToLower(b))

	if strings.Contains(ta, replyMarker) != strings.Contains(tb, replyMarker) {
		return false
	}

	short, long := ta, tb
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(long)-len(short) > maxLengthDelta {
		return false
	}
	return strings.HasPrefix(long, short)
}
