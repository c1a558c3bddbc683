package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studymate-ai/studymate/internal/adapters/driven/config/file"
	"github.com/studymate-ai/studymate/internal/adapters/driven/embedding/failover"
	granitembed "github.com/studymate-ai/studymate/internal/adapters/driven/embedding/granite"
	"github.com/studymate-ai/studymate/internal/adapters/driven/embedding/hashed"
	granitellm "github.com/studymate-ai/studymate/internal/adapters/driven/llm/granite"
	"github.com/studymate-ai/studymate/internal/adapters/driven/storage/memory"
	"github.com/studymate-ai/studymate/internal/adapters/driven/storage/sqlite"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
	"github.com/studymate-ai/studymate/internal/core/ports/driving"
	"github.com/studymate-ai/studymate/internal/core/services"
	"github.com/studymate-ai/studymate/internal/logger"
)

var version = "0.1.0"

// Environment variables for the optional remote AI endpoints. When
// unset, embeddings fall back to the deterministic hashed model and
// answers fall back to extractive composition.
const (
	envEmbeddingURL  = "STUDYMATE_EMBEDDING_URL"
	envGenerationURL = "STUDYMATE_GENERATION_URL"
)

var (
	verbose   bool
	configDir string
	useSQLite bool
)

// Services used by the commands. Wired once by initServices; tests
// swap in mocks directly.
var (
	indexService  driving.IndexService
	answerService driving.AnswerService
	quizService   driving.QuizService
	docStore      driven.DocumentStore
	configStore   *file.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "studymate",
	Short: "Study assistant grounded in your own documents",
	Long: `StudyMate indexes your study materials and answers questions,
synthesizes themes across documents, and generates quizzes, using only
the content you uploaded.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Name() == "version" {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose pipeline logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.studymate)")
	rootCmd.PersistentFlags().BoolVar(&useSQLite, "sqlite", false, "persist the index in SQLite instead of memory")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the engine from configuration. Already-set
// services are left alone so tests can inject mocks.
func initServices() error {
	if indexService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	configStore = cfg

	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	var store driven.DocumentStore
	if useSQLite {
		sqlStore, err := sqlite.NewDocumentStore(dataDir())
		if err != nil {
			return fmt.Errorf("open document store: %w", err)
		}
		store = sqlStore
	} else {
		store = memory.NewDocumentStore()
	}
	docStore = store

	var primary driven.EmbeddingService
	if url := os.Getenv(envEmbeddingURL); url != "" {
		primary = granitembed.NewEmbeddingService(granitembed.Config{BaseURL: url})
	}
	embedder := failover.NewEmbeddingService(primary, hashed.NewEmbeddingService())

	var generator driven.GenerationService
	if url := os.Getenv(envGenerationURL); url != "" {
		generator = granitellm.NewGenerationService(granitellm.Config{BaseURL: url})
	}

	retrieval := services.NewRetrievalService(store, embedder, settings)
	themes := services.NewThemeService(store, retrieval, settings)

	answer := services.NewAnswerService(store, retrieval, generator, themes, settings)
	if prompts, err := file.NewPromptStore(promptDir()); err == nil {
		answer.SetPromptStore(prompts)
	} else {
		logger.Warn("Prompt templates unavailable, using built-in defaults: %v", err)
	}

	indexService = services.NewIndexService(store, embedder, settings)
	answerService = answer
	quizService = services.NewQuizService(store, nil, settings)
	return nil
}

func baseDir() string {
	if configDir != "" {
		return configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studymate"
	}
	return filepath.Join(home, ".studymate")
}

func dataDir() string {
	return filepath.Join(baseDir(), "data")
}

func promptDir() string {
	return filepath.Join(baseDir(), "prompts")
}
