package internal

import "path/filepath"

// CommentPrefix marks comment lines in every resource file.
const CommentPrefix = "//"

const (
	synonymsDirName = "Synonyms"
	qnaDirName      = "QuestionsAndAnswers"
)

// SynonymsDir returns the directory holding the per-language synonym files.
func SynonymsDir(resourceDir string) string {
	return filepath.Join(resourceDir, synonymsDirName)
}

// QnADir returns the directory holding the question/answer files.
func QnADir(resourceDir string) string {
	return filepath.Join(resourceDir, qnaDirName)
}

// SynonymsFile returns the synonym file path for a language,
// e.g. Synonyms/synonyms_EN-GB.tsv.
func SynonymsFile(resourceDir, lang string) string {
	return filepath.Join(SynonymsDir(resourceDir), "synonyms_"+lang+".tsv")
}

// QnAFile returns the question/answer file path for a language,
// e.g. QuestionsAndAnswers/questions_and_answers_EN-GB.tsv.
func QnAFile(resourceDir, lang string) string {
	return filepath.Join(QnADir(resourceDir), "questions_and_answers_"+lang+".tsv")
}

// BotMessagesFile returns the path of the shared bot message table.
func BotMessagesFile(resourceDir string) string {
	return filepath.Join(resourceDir, "bot_messages.tsv")
}

// LanguagesFile returns the path of the supported-language list.
func LanguagesFile(resourceDir string) string {
	return filepath.Join(resourceDir, "languages.tsv")
}

// CacheFile returns the path of the synonym fetch cache database. It lives
// outside the Synonyms directory so maintenance passes over that directory
// only ever see tabular files.
func CacheFile(resourceDir string) string {
	return filepath.Join(resourceDir, "synonyms_cache.db")
}
