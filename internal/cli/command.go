package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/colpabot/resourcekit/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "resourcekit",
		Short: "Chatbot localized-resource maintenance toolkit",
		Long: `resourcekit maintains the chatbot's localized text resources:
question/answer tables, synonym lists and bot messages.

It fetches synonym candidates for the question vocabulary from the Datamuse
API, consolidates overlapping synonym groups into disjoint ones, and
translates resource files between the supported languages.

Examples:
  resourcekit synonyms                  # Fetch synonym candidates for the QnA vocabulary
  resourcekit group                     # Consolidate every synonym file
  resourcekit group synonyms_EN-GB.tsv  # Consolidate one file
  resourcekit translate --base-lang EN-GB --all`,
		Version: internal.Version,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.resourcekit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.ResourceDir, "resources", "r", flags.ResourceDir, "Resource directory")

	return rootCmd
}

// CreateSynonymsCommand creates the synonym fetch subcommand
func CreateSynonymsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synonyms",
		Short: "Fetch synonym candidates for the question vocabulary",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language, "Language of the QnA file to read")
	cmd.Flags().IntVar(&flags.MinScore, "min-score", flags.MinScore, "Keep candidates scoring strictly above this")
	cmd.Flags().IntVar(&flags.MaxSynonyms, "max-synonyms", flags.MaxSynonyms, "Maximum candidates kept per word")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Query the API even for cached words")

	bindFlagsToViper(cmd)
	return cmd
}

// CreateGroupCommand creates the synonym consolidation subcommand
func CreateGroupCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "group [file]",
		Short: "Consolidate overlapping synonym groups",
		Long: `group merges synonym lines that share a word into a single line,
repeated until every line is disjoint from every other. With no argument it
processes every .csv/.tsv file in the synonyms directory.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// CreateTranslateCommand creates the resource translation subcommand
func CreateTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate resource files into the other supported languages",
		Long: `translate fills in the QnA files, synonym files and bot messages for
every language other than the base language. Without flags it asks
interactively which file classes to translate.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVar(&flags.BaseLang, "base-lang", "", "Language to translate from (asks interactively when empty)")
	cmd.Flags().BoolVar(&flags.TranslateQnA, "qna", false, "Translate the question/answer files")
	cmd.Flags().BoolVar(&flags.TranslateSynonyms, "synonyms", false, "Translate the synonym files")
	cmd.Flags().BoolVar(&flags.TranslateMessages, "messages", false, "Translate the bot messages")
	cmd.Flags().BoolVar(&flags.TranslateAll, "all", false, "Translate every file class")
	cmd.Flags().BoolVar(&flags.Retranslate, "retranslate", false, "Re-translate bot message rows that already look complete")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")

	bindFlagsToViper(cmd)
	return cmd
}

// viperKeys maps flag names to their config file keys.
var viperKeys = map[string]string{
	"resources":    "resources.directory",
	"lang":         "synonyms.language",
	"min-score":    "synonyms.min_score",
	"max-synonyms": "synonyms.max_results",
	"provider":     "translation.provider",
	"openai-model": "translation.openai_model",
	"gemini-model": "translation.gemini_model",
}

func bindFlagsToViper(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := viperKeys[f.Name]; ok {
			viper.BindPFlag(key, cmd.Flags().Lookup(f.Name))
		}
	})
}

// ApplyConfig copies config file values onto flags the user did not set
// explicitly, so flags keep precedence over the config file.
func ApplyConfig(cmd *cobra.Command) {
	apply := func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		if key, ok := viperKeys[f.Name]; ok && viper.IsSet(key) {
			_ = f.Value.Set(viper.GetString(key))
		}
	}
	cmd.Flags().VisitAll(apply)
	cmd.InheritedFlags().VisitAll(apply)
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".resourcekit" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".resourcekit")
	}

	// Environment variables
	viper.SetEnvPrefix("RESOURCEKIT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}
