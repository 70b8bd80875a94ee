// Package translation translates the chatbot's tab-separated resource files
// (questions and answers, synonym lists, bot messages) between the supported
// languages. Machine translation is delegated to a configurable Provider
// backed by OpenAI or Gemini.
package translation
