package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	ResourceDir string
	Language    string

	// Synonym fetch flags
	MinScore    int
	MaxSynonyms int
	NoCache     bool

	// Translation flags
	BaseLang          string
	TranslateQnA      bool
	TranslateSynonyms bool
	TranslateMessages bool
	TranslateAll      bool
	Retranslate       bool

	// Provider flags
	Provider    string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		ResourceDir: "Resources",
		Language:    "EN-GB",
		MinScore:    500,
		MaxSynonyms: 10,
		Provider:    "openai",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
