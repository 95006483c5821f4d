package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	authToken string
	apiURL    string = "http://localhost:8686"
)

var rootCmd = &cobra.Command{
	Use:   "quillhub",
	Short: "QuillHub CLI - administer a running QuillHub server",
	Long: `QuillHub CLI provides command-line access to administrative operations:
clearing the index page cache and creating groups.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if authToken == "" {
			authToken = os.Getenv("QUILLHUB_TOKEN")
		}
		if authToken == "" && cmd.Name() != "help" && cmd.Parent() != nil {
			fmt.Fprintf(os.Stderr, "Error: QUILLHUB_TOKEN environment variable not set\n")
			fmt.Fprintf(os.Stderr, "Please set your auth token: export QUILLHUB_TOKEN=<your-token>\n")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Authentication token (defaults to QUILLHUB_TOKEN env var)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", apiURL, "API server URL")

	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(groupsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
