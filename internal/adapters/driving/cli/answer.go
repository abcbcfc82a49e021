package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ctrlf-search/internal/core/domain"
)

var (
	answerContextFile string
	answerJSON        bool
)

var answerCmd = &cobra.Command{
	Use:   "answer [question]",
	Short: "Answer a question from supplied context",
	Long: `Sends the question and context to Claude and prints the answer.
The model is told to answer only from the context.

Examples:
  ctrlf answer "How many signups?" --context-file signups.csv
  ctrlf search roadmap --json | ctrlf answer "What ships in Q3?" --context-file -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswer,
}

func init() {
	answerCmd.Flags().StringVarP(&answerContextFile, "context-file", "f", "", "file holding the context ('-' for stdin)")
	answerCmd.Flags().BoolVar(&answerJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(answerCmd)
}

func runAnswer(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ctxText, err := readContext(cmd, answerContextFile)
	if err != nil {
		return err
	}

	res := answerService.Answer(cmd.Context(), domain.AnswerRequest{Question: args[0], Context: ctxText})
	if answerJSON {
		return outputJSON(cmd, res)
	}
	if res.Error != "" {
		return errors.New(res.Error)
	}
	cmd.Println(*res.Answer)
	return nil
}

func readContext(cmd *cobra.Command, path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read context from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read context file: %w", err)
		}
		return string(data), nil
	}
}
