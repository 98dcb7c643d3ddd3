package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "legalhub",
	Short: "Prados de Paraíso Legal Hub backend",
	Long: `Legal Hub is the backend for the Prados de Paraíso legal assistant.

It answers real-estate legal questions in Spanish over a JSON API:
  - Text chat backed by OpenAI chat completions
  - Voice chat and conversational agents backed by ElevenLabs
  - Plain text-to-speech synthesis
  - Conversation history with scheduled retention pruning`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
