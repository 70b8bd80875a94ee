package synonyms

import "golang.org/x/text/cases"

// Consolidate merges every pair of groups that transitively share a word,
// repeated until no two groups overlap. Words are case-folded first, so
// co-membership is case-insensitive.
//
// Each pass rebuilds the group list from a snapshot: groups with fewer than
// two distinct words are dropped, duplicate words within a group are removed,
// and any group containing an already-seen word is appended onto the first
// earlier group holding that word and cleared. The loop stops at the first
// pass that changes nothing, which leaves a disjoint partition: every
// surviving group holds at least two distinct words and no word appears in
// two groups.
//
// Groups that consist of a single word carry no interchangeability
// information and are dropped rather than preserved.
func (f *File) Consolidate() error {
	fold := cases.Fold()
	groups := make([][]string, len(f.Groups))
	for i, group := range f.Groups {
		groups[i] = make([]string, len(group))
		for j, word := range group {
			groups[i][j] = fold.String(word)
		}
	}

	for changed := true; changed; {
		changed = false

		// Snapshot-then-rebuild: drop degenerate groups and intra-group
		// duplicates before the merge scan. A drop counts as a change so
		// groups cleared by a merge trigger one more pass.
		next := make([][]string, 0, len(groups))
		for _, group := range groups {
			deduped := dedup(group)
			if len(deduped) != len(group) {
				changed = true
			}
			if len(deduped) < 2 {
				changed = true
				continue
			}
			next = append(next, deduped)
		}
		groups = next

		// Merge scan: walk groups in order, tracking every word seen so far
		// in this pass. A group holding an already-seen word is merged into
		// the first other group that holds it; the cleared group is dropped
		// by the rebuild of the next pass. The tie-break to the first group
		// by scan order keeps the output deterministic.
		processed := make(map[string]bool)
		for i, group := range groups {
			for _, word := range group {
				if !processed[word] {
					processed[word] = true
					continue
				}
				target := -1
				for j, other := range groups {
					if j != i && containsWord(other, word) {
						target = j
						break
					}
				}
				if target < 0 {
					return &InternalConsistencyError{Word: word}
				}
				groups[target] = append(groups[target], group...)
				for _, w := range group {
					processed[w] = true
				}
				groups[i] = nil
				changed = true
				break
			}
		}
	}

	f.Groups = groups
	return nil
}

// dedup removes repeated words from a group, keeping first occurrences in
// their original order.
func dedup(words []string) []string {
	if len(words) == 0 {
		return words
	}
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
	}
	return out
}

func containsWord(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
