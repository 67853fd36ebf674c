package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/claidev/clai/internal/logging"
)

var (
	cfgFile string
	debug   bool
	rootCmd = &cobra.Command{
		Use:   "clai",
		Short: "clai is an AI dev team in your terminal",
		Long:  "clai routes @role mentions to LLM providers and chains multi-agent workflows.",
	}
)

// Execute runs the root command.
func Execute() error {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", filepath.Join(".clai", "config.json"), "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return fmt.Errorf("bind config flag: %w", err)
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(debug)
	}

	// bare `clai` starts the interactive shell
	rootCmd.RunE = shellCmd().RunE
	rootCmd.SilenceUsage = true

	registerCommands(rootCmd)
	return rootCmd.Execute()
}

func registerCommands(root *cobra.Command) {
	root.AddCommand(shellCmd())
	root.AddCommand(askCmd())
	root.AddCommand(chatCmd())
	root.AddCommand(workflowCmd())
	root.AddCommand(workflowsCmd())
	root.AddCommand(teamCmd())
	root.AddCommand(configCmd())
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = filepath.Join(".clai", "config.json")
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
}
