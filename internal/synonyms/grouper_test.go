package synonyms

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func consolidated(t *testing.T, groups [][]string) [][]string {
	t.Helper()

	f := &File{Delimiter: ",", Groups: groups}
	if err := f.Consolidate(); err != nil {
		t.Fatalf("Consolidate() failed: %v", err)
	}
	return f.Groups
}

// sortedGroups normalizes group and word order so tests do not depend on
// merge order.
func sortedGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, group := range groups {
		out[i] = append([]string(nil), group...)
		sort.Strings(out[i])
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i][0] < out[j][0]
	})
	return out
}

func TestConsolidate(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]string
		want   [][]string
	}{
		{
			name:   "empty input",
			groups: nil,
			want:   nil,
		},
		{
			name:   "disjoint groups unchanged",
			groups: [][]string{{"cat", "feline"}, {"dog", "canine"}},
			want:   [][]string{{"cat", "feline"}, {"canine", "dog"}},
		},
		{
			name:   "transitive merge through shared word",
			groups: [][]string{{"cat", "feline"}, {"dog", "canine"}, {"feline", "animal"}},
			want:   [][]string{{"animal", "cat", "feline"}, {"canine", "dog"}},
		},
		{
			name:   "singleton group dropped",
			groups: [][]string{{"lonely"}, {"big", "large"}},
			want:   [][]string{{"big", "large"}},
		},
		{
			name:   "exact duplicate lines collapse",
			groups: [][]string{{"big", "large"}, {"big", "large"}},
			want:   [][]string{{"big", "large"}},
		},
		{
			name:   "duplicate words within a group removed",
			groups: [][]string{{"big", "big", "large", "large"}},
			want:   [][]string{{"big", "large"}},
		},
		{
			name:   "group degenerate after dedup dropped",
			groups: [][]string{{"same", "same"}, {"big", "large"}},
			want:   [][]string{{"big", "large"}},
		},
		{
			name:   "case folded before comparison",
			groups: [][]string{{"Cat", "FELINE"}, {"feline", "Animal"}},
			want:   [][]string{{"animal", "cat", "feline"}},
		},
		{
			name: "chain of merges across several groups",
			groups: [][]string{
				{"a", "b"},
				{"c", "d"},
				{"b", "c"},
				{"e", "f"},
				{"d", "e"},
			},
			want: [][]string{{"a", "b", "c", "d", "e", "f"}},
		},
		{
			name:   "empty group discarded",
			groups: [][]string{{}, {"big", "large"}},
			want:   [][]string{{"big", "large"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedGroups(consolidated(t, tt.groups))
			want := sortedGroups(tt.want)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Consolidate() = %v, want %v", got, want)
			}
		})
	}
}

func TestConsolidate_DeterministicOrder(t *testing.T) {
	// The surviving group keeps the position and word order of the earliest
	// line it absorbed.
	got := consolidated(t, [][]string{
		{"cat", "feline"},
		{"dog", "canine"},
		{"feline", "animal"},
	})
	want := [][]string{
		{"cat", "feline", "animal"},
		{"dog", "canine"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Consolidate() = %v, want %v", got, want)
	}
}

func TestConsolidate_Idempotent(t *testing.T) {
	groups := [][]string{
		{"cat", "feline"},
		{"feline", "animal"},
		{"dog", "canine", "dog"},
		{"solo"},
	}

	first := consolidated(t, groups)
	second := consolidated(t, first)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run changed a converged partition: %v vs %v", first, second)
	}
}

func TestConsolidate_PartitionDisjoint(t *testing.T) {
	groups := consolidated(t, [][]string{
		{"a", "b"},
		{"b", "c"},
		{"d", "e"},
		{"e", "f"},
		{"g", "h"},
		{"x", "y", "x"},
		{"y", "a"},
	})

	seen := make(map[string]int)
	for i, group := range groups {
		for _, word := range group {
			if j, ok := seen[word]; ok && j != i {
				t.Errorf("word %q appears in groups %d and %d", word, j, i)
			}
			seen[word] = i
		}
	}
}

func TestConsolidate_PreservesWords(t *testing.T) {
	input := [][]string{
		{"a", "b"},
		{"b", "c"},
		{"d", "e"},
	}
	groups := consolidated(t, input)

	got := make(map[string]bool)
	for _, group := range groups {
		for _, word := range group {
			got[word] = true
		}
	}
	for _, word := range []string{"a", "b", "c", "d", "e"} {
		if !got[word] {
			t.Errorf("word %q missing from output", word)
		}
	}
	if len(got) != 5 {
		t.Errorf("expected 5 distinct words, got %d", len(got))
	}
}

func TestConsolidate_NoUnderMerge(t *testing.T) {
	// Every pair of groups that ever shared a word must end up together, even
	// when the overlap only shows after earlier merges.
	groups := consolidated(t, [][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f"},
		{"b", "c"},
		{"d", "e"},
	})
	if len(groups) != 1 {
		t.Fatalf("expected a single merged group, got %d: %v", len(groups), groups)
	}
	if len(groups[0]) != 6 {
		t.Errorf("expected 6 words in merged group, got %d: %v", len(groups[0]), groups[0])
	}
}

func TestInternalConsistencyError_Message(t *testing.T) {
	err := &InternalConsistencyError{Word: "feline"}
	want := `synonym "feline" not found in any other group`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var target *InternalConsistencyError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed to match InternalConsistencyError")
	}
}
