package synonyms

import "fmt"

// UnsupportedFormatError is returned when a synonym file does not carry one
// of the accepted tabular extensions.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s is an invalid file extension, only .csv and .tsv files are allowed", e.Filename)
}

// InternalConsistencyError reports that the merge scan flagged a word as
// duplicated across groups but could not locate it in any other group. The
// scan itself put the word there, so this is unreachable unless the engine
// has a bug.
type InternalConsistencyError struct {
	Word string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("synonym %q not found in any other group", e.Word)
}
