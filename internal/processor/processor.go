package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/colpabot/resourcekit/internal"
	"github.com/colpabot/resourcekit/internal/cache"
	"github.com/colpabot/resourcekit/internal/cli"
	"github.com/colpabot/resourcekit/internal/datamuse"
	"github.com/colpabot/resourcekit/internal/synonyms"
	"github.com/colpabot/resourcekit/internal/translation"
	"github.com/colpabot/resourcekit/internal/vocab"
)

// Processor handles the main resource maintenance logic
type Processor struct {
	flags    *cli.Flags
	datamuse *datamuse.Client

	// input is where interactive prompts read from; tests replace it.
	input io.Reader
}

// NewProcessor creates a new resource processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:    flags,
		datamuse: datamuse.NewClient(),
		input:    os.Stdin,
	}
}

// FetchSynonyms extracts the question vocabulary for the configured language
// and writes one line per word to the synonym file: the word followed by its
// candidate synonyms, tab-separated. Cached words are not re-queried unless
// --no-cache is set.
func (p *Processor) FetchSynonyms(ctx context.Context) error {
	qnaFile := internal.QnAFile(p.flags.ResourceDir, p.flags.Language)
	words, err := vocab.ExtractQuestionWords(qnaFile)
	if err != nil {
		return err
	}

	var store *cache.Cache
	if !p.flags.NoCache {
		store, err = cache.Open(internal.CacheFile(p.flags.ResourceDir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: synonym cache unavailable: %v\n", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	opts := &datamuse.SearchOptions{
		MinScore:   p.flags.MinScore,
		MaxResults: p.flags.MaxSynonyms,
	}

	fetchedCount := 0
	cachedCount := 0
	errorCount := 0

	var b strings.Builder
	for i, word := range words {
		fmt.Printf("Fetching synonyms %d/%d: %s\n", i+1, len(words), word)

		candidates, ok, err := p.cachedSynonyms(store, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache lookup for '%s' failed: %v\n", word, err)
		}
		if ok {
			cachedCount++
		} else {
			candidates, err = p.datamuse.Synonyms(ctx, word, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching synonyms for '%s': %v\n", word, err)
				errorCount++
				continue
			}
			fetchedCount++
			if store != nil {
				if err := store.Put(word, candidates); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to cache '%s': %v\n", word, err)
				}
			}
		}

		b.WriteString(word)
		for _, candidate := range candidates {
			b.WriteString("\t")
			b.WriteString(candidate)
		}
		b.WriteString("\n")
	}

	outFile := internal.SynonymsFile(p.flags.ResourceDir, p.flags.Language)
	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return fmt.Errorf("failed to create synonyms directory: %w", err)
	}
	if err := os.WriteFile(outFile, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write synonym file: %w", err)
	}

	fmt.Printf("\n=== Synonym Fetch Summary ===\n")
	fmt.Printf("Total words: %d\n", len(words))
	fmt.Printf("Fetched: %d\n", fetchedCount)
	fmt.Printf("From cache: %d\n", cachedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=============================\n")
	fmt.Printf("\nSynonyms written to %s\n", outFile)
	return nil
}

func (p *Processor) cachedSynonyms(store *cache.Cache, word string) ([]string, bool, error) {
	if store == nil {
		return nil, false, nil
	}
	return store.Get(word)
}

// GroupSynonyms consolidates every synonym file in the synonyms directory.
func (p *Processor) GroupSynonyms() error {
	dir := internal.SynonymsDir(p.flags.ResourceDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read synonyms directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := synonyms.DelimiterFor(entry.Name()); err != nil {
			fmt.Printf("%s is an invalid file extension. Only .csv and .tsv files are allowed\n", entry.Name())
			continue
		}
		if err := p.GroupFile(path); err != nil {
			return err
		}
	}
	return nil
}

// GroupFile consolidates a single synonym file.
func (p *Processor) GroupFile(path string) error {
	if err := synonyms.Group(path); err != nil {
		return err
	}
	fmt.Printf("Synonyms in %s have been grouped\n", filepath.Base(path))
	return nil
}

// Translate fills in the resource files for every language other than the
// base language. When --base-lang is not given, the base language and the
// file classes are chosen interactively, like the original maintenance flow.
func (p *Processor) Translate(ctx context.Context) error {
	languages, err := translation.Languages(internal.LanguagesFile(p.flags.ResourceDir))
	if err != nil {
		return err
	}

	reader := bufio.NewReader(p.input)

	baseLang := p.flags.BaseLang
	interactive := baseLang == ""
	if interactive {
		baseLang, err = p.promptLanguage(reader, languages)
		if err != nil {
			return err
		}
	}
	if !containsLang(languages, baseLang) {
		return fmt.Errorf("base language %s not found in the languages file", baseLang)
	}

	doQnA := p.flags.TranslateQnA || p.flags.TranslateAll
	doSynonyms := p.flags.TranslateSynonyms || p.flags.TranslateAll
	doMessages := p.flags.TranslateMessages || p.flags.TranslateAll
	if interactive && !doQnA && !doSynonyms && !doMessages {
		doQnA = promptYesNo(reader, "Do you want to translate the QnA files? (y/n)")
		doSynonyms = promptYesNo(reader, "Do you want to translate the Synonyms files? (y/n)")
		doMessages = promptYesNo(reader, "Do you want to translate the bot messages? (y/n)")
	}
	if !doQnA && !doSynonyms && !doMessages {
		fmt.Println("Nothing to translate")
		return nil
	}

	provider, err := translation.NewProvider(&translation.Config{
		Provider:    p.flags.Provider,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: p.flags.OpenAIModel,
		GeminiKey:   cli.GetGeminiKey(),
		GeminiModel: p.flags.GeminiModel,
	})
	if err != nil {
		return err
	}
	if err := provider.IsAvailable(); err != nil {
		return err
	}

	ft := translation.NewFileTranslator(provider, languages)
	resourceDir := p.flags.ResourceDir

	if doQnA {
		for _, lang := range languages {
			if lang == baseLang {
				continue
			}
			src := internal.QnAFile(resourceDir, baseLang)
			dst := internal.QnAFile(resourceDir, lang)
			fmt.Printf("Translating %s from %s into %s...\n", src, baseLang, lang)
			if err := ft.TranslateQnA(ctx, src, dst, baseLang, lang); err != nil {
				return err
			}
		}
		fmt.Println("QnA translation finished")
	}

	if doSynonyms {
		for _, lang := range languages {
			if lang == baseLang {
				continue
			}
			src := internal.SynonymsFile(resourceDir, baseLang)
			dst := internal.SynonymsFile(resourceDir, lang)
			fmt.Printf("Translating %s from %s into %s...\n", src, baseLang, lang)
			if err := ft.TranslateSynonyms(ctx, src, dst, baseLang, lang); err != nil {
				return err
			}
		}
		fmt.Println("Synonyms translation finished")
	}

	if doMessages {
		path := internal.BotMessagesFile(resourceDir)
		fmt.Printf("Translating bot messages in %s...\n", path)
		if err := ft.TranslateBotMessages(ctx, path, baseLang, p.flags.Retranslate); err != nil {
			return err
		}
		fmt.Println("Bot message translation finished")
	}

	return nil
}

func (p *Processor) promptLanguage(reader *bufio.Reader, languages []string) (string, error) {
	fmt.Println("Please select the language you want to translate from:")
	for i, lang := range languages {
		fmt.Printf("%d %s\n", i+1, lang)
	}

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read language selection: %w", err)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(languages) {
		return "", fmt.Errorf("invalid language selection %q", strings.TrimSpace(line))
	}
	return languages[choice-1], nil
}

func promptYesNo(reader *bufio.Reader, question string) bool {
	fmt.Println(question)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func containsLang(languages []string, lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
