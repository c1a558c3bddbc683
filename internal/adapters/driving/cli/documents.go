package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage indexed documents",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed documents",
	RunE:  runDocumentsList,
}

var documentsChunksCmd = &cobra.Command{
	Use:   "chunks [doc-id]",
	Short: "Show the chunks of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsChunks,
}

var documentsDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Remove a document and its chunks from the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsDelete,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsChunksCmd)
	documentsCmd.AddCommand(documentsDeleteCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	docs, err := indexService.Documents(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents indexed yet. Use 'studymate ingest' to add some.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name:     %s\n", docs[i].Name)
		cmd.Printf("    Type:     %s\n", docs[i].Type)
		cmd.Printf("    Sections: %d\n", len(docs[i].Sections))
		cmd.Printf("    Added:    %s\n", docs[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}
	cmd.Printf("Total: %d document(s)\n", len(docs))
	return nil
}

func runDocumentsChunks(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	chunks, err := indexService.Chunks(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get chunks: %w", err)
	}

	for _, chunk := range chunks {
		section := chunk.Section
		if section == "" {
			section = "(no section)"
		}
		cmd.Printf("[%d] %s | %s\n", chunk.Position, chunk.ID, section)
		cmd.Printf("%s\n\n", chunk.Content)
	}
	cmd.Printf("Total: %d chunk(s)\n", len(chunks))
	return nil
}

func runDocumentsDelete(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Document %s removed from the index.\n", args[0])
	return nil
}
