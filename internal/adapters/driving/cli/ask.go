package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/core/domain"
)

var (
	askDocs  []string
	askJSON  bool
	askTheme bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your indexed materials",
	Long: `Answers a question using only indexed content. Research questions
spanning multiple documents are routed to cross-document theme
synthesis; use --themes to force it.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringSliceVarP(&askDocs, "docs", "d", nil, "restrict to these document IDs")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output as JSON")
	askCmd.Flags().BoolVar(&askTheme, "themes", false, "force cross-document theme synthesis")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	ctx := context.Background()
	question := args[0]

	if askTheme {
		report, err := answerService.Synthesize(ctx, question, askDocs)
		if err != nil {
			return fmt.Errorf("synthesis failed: %w", err)
		}
		if askJSON {
			return outputJSON(cmd, report)
		}
		return outputThemeReport(cmd, report)
	}

	answer, err := answerService.Ask(ctx, question, askDocs)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputJSON(cmd, answer)
	}
	return outputAnswer(cmd, answer)
}

func outputAnswer(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println(answer.Text)
	cmd.Println()
	cmd.Printf("Intent: %s | Mode: %s | Confidence: %.2f\n", answer.Intent, answer.Mode, answer.Confidence)

	if len(answer.Sources) > 0 {
		cmd.Println("\nSources:")
		for i, src := range answer.Sources {
			section := src.Section
			if section == "" {
				section = "(no section)"
			}
			cmd.Printf("  %d. %s, %s (score %.2f)\n", i+1, src.DocumentName, section, src.Score)
		}
	}
	return nil
}

func outputThemeReport(cmd *cobra.Command, report *domain.ThemeReport) error {
	cmd.Println(report.Narrative)
	cmd.Println()
	cmd.Printf("Themes: %d | Documents: %d | Confidence: %.2f\n",
		len(report.Themes), len(report.DocumentNames), report.Confidence)
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
