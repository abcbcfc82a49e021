package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driving/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP search proxy",
	Long: `Start the HTTP proxy. Endpoints:
  GET|POST /search       (alias /api/search)
  GET      /healthz
  GET      /metrics      Prometheus metrics

Examples:
  ctrlf serve
  ctrlf serve --addr :8080
  curl 'localhost:3000/search?source=notion&query=roadmap'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings, :3000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := api.NewServer(&api.Ports{
		Search:  searchService,
		Content: contentService,
		Answer:  answerService,
		Metrics: appMetrics,
	})
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" && settings != nil {
		addr = settings.Server.Addr
	}
	return server.Run(cmd.Context(), addr)
}
