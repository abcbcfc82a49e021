package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Settings file commands",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a settings file with default values",
	Long: `Writes every setting with its default value. Credentials are left out;
set NOTION_TOKEN, SLACK_BOT_TOKEN and ANTHROPIC_API_KEY in the environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		defaults := &domain.Settings{}
		defaults.ApplyDefaults()
		if err := file.SaveSettings(path, defaults); err != nil {
			return err
		}
		cmd.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which capabilities are configured",
	Run: func(cmd *cobra.Command, _ []string) {
		for _, s := range sourceStatuses() {
			state := "not configured"
			if s.Configured {
				state = "configured"
			}
			cmd.Printf("%-10s %s\n", s.Name, state)
		}
		if settings != nil {
			cmd.Printf("%-10s %s\n", "addr", settings.Server.Addr)
			cmd.Printf("%-10s %s\n", "model", settings.Anthropic.Model)
		}
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
