// Package cache persists fetched synonym candidates between maintenance
// runs, so repeated passes do not re-query the lexical API for words it has
// already answered.
package cache
