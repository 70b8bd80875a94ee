package translation

import (
	"fmt"
	"os"
	"strings"

	"github.com/colpabot/resourcekit/internal"
)

// Languages reads the supported-language list: the first non-comment,
// non-blank line of the languages file, tab-separated.
func Languages(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file: %w", err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, internal.CommentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		return strings.Split(line, "\t"), nil
	}
	return nil, fmt.Errorf("no language line found in %s", path)
}
