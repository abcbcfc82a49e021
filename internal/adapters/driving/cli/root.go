// Package cli provides the ctrlf command line: the HTTP proxy, one-shot
// searches, answers and Drive extraction, and the MCP server.
package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/metrics"
	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
	"github.com/custodia-labs/ctrlf-search/internal/core/ports/driving"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	configPath string
	verbose    bool
)

// Wired on first command run.
var (
	settings       *domain.Settings
	appMetrics     *metrics.Metrics
	searchService  driving.SearchService
	contentService driving.ContentService
	answerService  driving.AnswerService
	servicesReady  bool
)

var rootCmd = &cobra.Command{
	Use:   "ctrlf",
	Short: "Search proxy for Notion, Slack and Google Drive",
	Long: `ctrlf keeps workspace credentials server-side and searches Notion,
Slack and Google Drive through one endpoint. It can summarise gathered
context with Claude when ANTHROPIC_API_KEY is set.

Credentials are read from the environment (optionally via .env):
  NOTION_TOKEN, SLACK_BOT_TOKEN, ANTHROPIC_API_KEY`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", file.DefaultFileName, "settings file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup loads settings and wires services once per process.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if servicesReady {
		return nil
	}

	// A missing .env file is fine
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env loaded: %v", err)
	}

	s, err := file.LoadSettings(configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	app, err := wire(s)
	if err != nil {
		return err
	}
	useApp(s, app)
	return nil
}

func useApp(s *domain.Settings, app *application) {
	settings = s
	appMetrics = app.metrics
	searchService = app.search
	contentService = app.content
	answerService = app.answer
	servicesReady = true
}
