// Package main provides the career_agent CLI: skill-based career recommendations
// from the command line, an interactive prompt, batch runs and an HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career path recommender",
	Long:  "Career Agent ranks careers from a CSV corpus against your skills and explains each match with a learning path, starter projects and resume keywords.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
