// Package processor orchestrates the maintenance runs: fetching synonym
// candidates for the question vocabulary, consolidating synonym files, and
// translating resource files into the other supported languages.
package processor
