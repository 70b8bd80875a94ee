// Package synonyms maintains the chatbot's synonym resource files. Each line
// of a file is one group of mutually interchangeable words. The package reads
// the tabular files, consolidates groups that share a word into a single
// group, and writes the result back.
package synonyms
