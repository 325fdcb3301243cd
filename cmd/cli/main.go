package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "boki-cli",
		Short: "Boki CLI tool",
		Long:  `A command line interface for interacting with the Boki bookkeeping API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:2480", "Base URL of the Boki API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts operations",
	}

	accountsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts")
		},
	}

	accountsCmd.AddCommand(accountsListCmd)
	rootCmd.AddCommand(accountsCmd)

	// Journal commands
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal operations",
	}

	journalShowCmd := &cobra.Command{
		Use:   "show [year month]",
		Short: "Show journal entries for a month (default: current month)",
		Args:  cobra.RangeArgs(0, 2),
		Run: func(cmd *cobra.Command, args []string) {
			switch len(args) {
			case 2:
				get(fmt.Sprintf("/api/v1/journal/%s/%s", args[0], args[1]))
			case 0:
				get("/api/v1/journal")
			default:
				fmt.Println("provide both year and month, or neither")
				os.Exit(1)
			}
		},
	}

	journalCmd.AddCommand(journalShowCmd)
	rootCmd.AddCommand(journalCmd)

	// Summary commands
	var scope string

	summaryCmd := &cobra.Command{
		Use:   "summary year [month]",
		Short: "Show a trial-balance summary for a year or a month",
		Args:  cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/summary/" + args[0]
			if len(args) == 2 {
				path += "/" + args[1]
			}
			if scope != "" {
				path += "/" + scope
			}
			get(path)
		},
	}
	summaryCmd.Flags().StringVar(&scope, "scope", "", "Summary scope: from_prev, kessan, soneki or to_next")

	rootCmd.AddCommand(summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) {
	out, err := fetch(baseURL, path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(out)
}

func fetch(base, path string) (string, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(base + path)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	return string(out), nil
}
