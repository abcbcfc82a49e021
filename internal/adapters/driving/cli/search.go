package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

var (
	searchSource string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Notion or Slack",
	Long: `Runs one search against a single source and prints the results.
Notion results include linearised page content; Slack falls back to
scanning channel history when message search is unavailable.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSource, "source", "s", string(domain.SourceNotion), "source to search: notion, slack")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	switch domain.Source(searchSource) {
	case domain.SourceNotion:
		res, err := searchService.SearchNotes(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, res)
		}
		return outputPages(cmd, res)
	case domain.SourceSlack:
		res, err := searchService.SearchMessages(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if searchJSON {
			return outputJSON(cmd, res)
		}
		return outputMessages(cmd, res)
	default:
		return domain.ErrInvalidSource
	}
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputPages(cmd *cobra.Command, res *domain.PageResults) error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	if res.Count == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, p := range res.Pages {
		cmd.Printf("[%d] %s (%s)\n", i+1, p.Title, p.Type)
		cmd.Printf("    %s\n", p.URL)
		if p.Content != "" {
			cmd.Printf("    %s\n", domain.Truncate(p.Content, 120))
		}
		cmd.Println()
	}
	return nil
}

func outputMessages(cmd *cobra.Command, res *domain.MessageResults) error {
	if res.Error != "" {
		return errors.New(res.Error)
	}
	if res.Count == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, m := range res.Messages {
		// Format: [N] #channel @user: text
		cmd.Printf("[%d] #%s @%s: %s\n", i+1, m.Channel, m.Username, domain.Truncate(m.Text, 120))
		if m.Permalink != nil {
			cmd.Printf("    %s\n", *m.Permalink)
		}
	}
	return nil
}
