package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content, making parent directories
// as needed.
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateResourceLayout creates a temporary resource directory with the
// standard chatbot layout and a minimal set of files for one language.
func CreateResourceLayout(t *testing.T, lang string) string {
	t.Helper()

	resourceDir := t.TempDir()

	files := map[string]string{
		filepath.Join("QuestionsAndAnswers", "questions_and_answers_"+lang+".tsv"): "xx\nyy\n1\tWhat time is breakfast?\tAt eight.\n",
		filepath.Join("Synonyms", "synonyms_"+lang+".tsv"):                         "big\tlarge\n",
		"languages.tsv":    "// supported languages\n" + lang + "\tES\n",
		"bot_messages.tsv": "{}\n{{}}\nkey\t" + lang + "\tES\ngreeting\tHello\n",
	}

	for name, content := range files {
		CreateTestFile(t, filepath.Join(resourceDir, name), []byte(content))
	}

	return resourceDir
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks that a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}
