package translation

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/colpabot/resourcekit/internal"
)

// FileTranslator translates the bot's tab-separated resource files line by
// line, preserving structural lines (headers, comments, blanks) verbatim.
type FileTranslator struct {
	provider  Provider
	languages []string
}

// NewFileTranslator creates a file translator over the configured language
// list.
func NewFileTranslator(provider Provider, languages []string) *FileTranslator {
	return &FileTranslator{
		provider:  provider,
		languages: languages,
	}
}

func (t *FileTranslator) checkPair(sourceLang, targetLang string) error {
	if sourceLang == targetLang {
		return fmt.Errorf("source language %s is the same as target language %s", sourceLang, targetLang)
	}
	if !containsLang(t.languages, sourceLang) {
		return fmt.Errorf("source language %s not found in the languages file", sourceLang)
	}
	if !containsLang(t.languages, targetLang) {
		return fmt.Errorf("target language %s not found in the languages file", targetLang)
	}
	return nil
}

// TranslateQnA translates a three-column question/answer file from srcPath
// into dstPath. The header line and the no-translation marker line pass
// through, as do blank lines, comments and score lines (rows whose first
// field is an integer). The first column of every content row is kept
// unchanged; fields equal to the no-translation marker are not translated.
func (t *FileTranslator) TranslateQnA(ctx context.Context, srcPath, dstPath, sourceLang, targetLang string) error {
	if err := t.checkPair(sourceLang, targetLang); err != nil {
		return err
	}

	lines, err := readLines(srcPath)
	if err != nil {
		return err
	}

	general := GeneralLang(sourceLang)
	out := make([]string, 0, len(lines))

	var noTranslation string
	if len(lines) > 0 {
		out = append(out, lines[0]) // header
	}
	if len(lines) > 1 {
		noTranslation = lines[1]
		out = append(out, noTranslation)
	}

	for i := 2; i < len(lines); i++ {
		line := lines[i]
		fields := strings.Split(line, "\t")

		if strings.TrimSpace(line) == "" ||
			strings.HasPrefix(line, internal.CommentPrefix) ||
			isInteger(fields[0]) {
			out = append(out, line)
			continue
		}

		if len(fields) != 3 {
			return fmt.Errorf("invalid question file %s: expected 3 columns, got %d (%q)", srcPath, len(fields), line)
		}

		result := []string{fields[0]}
		for _, text := range fields[1:] {
			if text == noTranslation {
				result = append(result, text)
				continue
			}
			translated, err := t.provider.Translate(ctx, text, general, targetLang)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			result = append(result, translated)
		}
		out = append(out, strings.Join(result, "\t"))
	}

	return writeLines(dstPath, out)
}

// TranslateSynonyms translates a synonym file from srcPath into dstPath.
// Every field of every content row is translated; blank lines and comments
// pass through.
func (t *FileTranslator) TranslateSynonyms(ctx context.Context, srcPath, dstPath, sourceLang, targetLang string) error {
	if err := t.checkPair(sourceLang, targetLang); err != nil {
		return err
	}

	lines, err := readLines(srcPath)
	if err != nil {
		return err
	}

	general := GeneralLang(sourceLang)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, internal.CommentPrefix) {
			out = append(out, line)
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return fmt.Errorf("invalid synonym file %s: expected at least 2 columns, got %d (%q)", srcPath, len(fields), line)
		}

		result := make([]string, 0, len(fields))
		for _, text := range fields {
			translated, err := t.provider.Translate(ctx, text, general, targetLang)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			result = append(result, translated)
		}
		out = append(out, strings.Join(result, "\t"))
	}

	return writeLines(dstPath, out)
}

// TranslateBotMessages fills in the missing languages of the shared bot
// message table in place. The first two preamble lines and the header row
// pass through; the header names the target languages and must agree with
// the languages file once the base language is moved to the front. Rows that
// already carry one field per language are left alone unless retranslate is
// set; all other rows get the base-language text translated into every other
// language.
func (t *FileTranslator) TranslateBotMessages(ctx context.Context, path, baseLang string, retranslate bool) error {
	if !containsLang(t.languages, baseLang) {
		return fmt.Errorf("base language %s not found in the languages file", baseLang)
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if len(lines) < 3 {
		return fmt.Errorf("invalid bot message file %s: expected preamble and header", path)
	}

	general := GeneralLang(baseLang)
	out := make([]string, 0, len(lines))
	out = append(out, lines[0], lines[1])

	header := lines[2]
	out = append(out, header)

	targetLangs := strings.Split(header, "\t")[1:] // first column is the message key
	ordered := []string{baseLang}
	for _, lang := range targetLangs {
		if lang != baseLang {
			ordered = append(ordered, lang)
		}
	}
	if !equalLangs(ordered, t.languages) {
		return fmt.Errorf("languages in %s do not match the languages file", path)
	}

	for _, line := range lines[3:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")

		// A complete row carries the key plus one field per language.
		if !retranslate && len(fields) == len(ordered)+1 {
			out = append(out, line)
			continue
		}
		if len(fields) < 2 {
			return fmt.Errorf("invalid bot message row %q: missing base text", line)
		}

		key := fields[0]
		text := fields[1]
		result := []string{key, text}
		for _, lang := range ordered[1:] {
			translated, err := t.provider.Translate(ctx, text, general, lang)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			result = append(result, translated)
		}
		out = append(out, strings.Join(result, "\t"))
	}

	return writeLines(path, out)
}

func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// isInteger reports whether a field holds a plain (possibly negative)
// integer, which marks a score row rather than translatable text.
func isInteger(field string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(field))
	return err == nil
}

func containsLang(languages []string, lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}

func equalLangs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
