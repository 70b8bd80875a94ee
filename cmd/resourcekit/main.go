package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/colpabot/resourcekit/internal/cli"
	"github.com/colpabot/resourcekit/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	synonymsCmd := cli.CreateSynonymsCommand(flags)
	synonymsCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(cmd)
		return processor.NewProcessor(flags).FetchSynonyms(cmd.Context())
	}

	groupCmd := cli.CreateGroupCommand(flags)
	groupCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(cmd)
		proc := processor.NewProcessor(flags)
		if len(args) > 0 {
			return proc.GroupFile(args[0])
		}
		return proc.GroupSynonyms()
	}

	translateCmd := cli.CreateTranslateCommand(flags)
	translateCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.ApplyConfig(cmd)
		return processor.NewProcessor(flags).Translate(cmd.Context())
	}

	rootCmd.AddCommand(synonymsCmd, groupCmd, translateCmd)

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
