package vocab

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/colpabot/resourcekit/internal"
)

// ExtractQuestionWords reads a question/answer .tsv file and returns the
// distinct normalized words appearing in the question column, sorted.
//
// The first two lines of the file declare symbols that must not be treated
// as vocabulary; they are matched verbatim against normalized words. Comment
// lines, blank lines and lines without a question column contribute nothing.
// A normalized token may contain an inner space when punctuation split it
// ("well-known" yields "well known"); it is kept as a single entry.
func ExtractQuestionWords(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	ignore := make(map[string]bool)
	for i := 0; i < 2 && i < len(lines); i++ {
		ignore[lines[i]] = true
	}

	var questions []string
	for _, line := range lines {
		if strings.HasPrefix(line, internal.CommentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		questions = append(questions, fields[1])
	}

	seen := make(map[string]bool)
	var words []string
	for _, token := range strings.Fields(strings.Join(questions, " ")) {
		word := Normalize(token)
		if word == "" || ignore[word] || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	sort.Strings(words)
	return words, nil
}
