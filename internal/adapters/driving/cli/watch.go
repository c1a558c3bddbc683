package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/extract"
	"github.com/studymate-ai/studymate/internal/logger"
)

// watchSettleDelay lets editors finish writing before ingestion reads
// the file.
const watchSettleDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and index new study materials",
	Long: `Watches a directory and automatically ingests text files as they are
created or modified. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	cmd.Printf("Watching %s for study materials. Press Ctrl+C to stop.\n", dir)

	ctx := context.Background()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !extract.Supported(event.Name) {
				continue
			}

			time.Sleep(watchSettleDelay)
			if err := ingestWatched(ctx, event.Name); err != nil {
				logger.Warn("Failed to ingest %s: %v", event.Name, err)
				continue
			}
			cmd.Printf("Indexed %s\n", event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-stop:
			cmd.Println("Stopping watcher.")
			return nil
		}
	}
}

// ingestWatched re-indexes a file under a path-derived ID so repeated
// saves replace the document instead of accumulating copies.
func ingestWatched(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text, err := extract.Text(path, raw)
	if err != nil {
		return err
	}

	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)).String()
	if err := indexService.Remove(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	_, err = indexService.Ingest(ctx, id, text, displayName(path))
	return err
}
