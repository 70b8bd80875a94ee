// Package datamuse provides a client for the Datamuse word-relation API,
// used to fetch candidate synonyms for the chatbot's question vocabulary.
package datamuse
