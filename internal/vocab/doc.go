// Package vocab extracts the question vocabulary from the chatbot's
// question/answer resource files and normalizes it for lexical lookups.
package vocab
