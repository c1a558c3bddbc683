package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change engine settings",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Long: `Sets a configuration key. Numeric values are stored as numbers.

Keys include chunking.size, chunking.overlap, retrieval.top_k,
retrieval.score_threshold, retrieval.textbook_boost and
quiz.short_answer_threshold.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings := configStore.Settings()
	values := map[string]any{
		file.KeyChunkSize:            settings.ChunkSize,
		file.KeyChunkOverlap:         settings.ChunkOverlap,
		file.KeyMaxKeywords:          settings.MaxKeywords,
		file.KeyTopK:                 settings.TopK,
		file.KeyThemeTopK:            settings.ThemeTopK,
		file.KeyScoreThreshold:       settings.ScoreThreshold,
		file.KeyTextbookBoost:        settings.TextbookBoost,
		file.KeyKeywordBoost:         settings.KeywordBoost,
		file.KeyConfidenceScale:      settings.ConfidenceScale,
		file.KeyConceptOverlap:       settings.ConceptOverlap,
		file.KeyShortAnswerThreshold: settings.ShortAnswerThreshold,
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		cmd.Printf("  %-28s %v\n", k, values[k])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	var value any = raw
	if i, err := strconv.Atoi(raw); err == nil {
		value = i
	} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
		value = f
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}
