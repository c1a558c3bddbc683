package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/extract"
)

var ingestName string

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Index study materials",
	Long: `Reads one or more study files (.txt, .md, .html, .docx), extracts
their plain text, detects the document type, splits the text into
overlapping chunks, embeds each chunk, and adds them to the index.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "display name (single file only, defaults to the file name)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	if ingestName != "" && len(args) > 1 {
		return errors.New("--name applies to a single file")
	}

	ctx := context.Background()
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		text, err := extract.Text(path, raw)
		if err != nil {
			return err
		}

		name := ingestName
		if name == "" {
			name = displayName(path)
		}

		doc, err := indexService.Ingest(ctx, uuid.New().String(), text, name)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}

		cmd.Printf("Indexed %q as %s\n", doc.Name, doc.ID)
		cmd.Printf("  Type:     %s\n", doc.Type)
		cmd.Printf("  Sections: %d\n", len(doc.Sections))
		cmd.Printf("  Keywords: %s\n", strings.Join(doc.Keywords, ", "))
	}
	return nil
}

// displayName derives a human name from the file path.
func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
