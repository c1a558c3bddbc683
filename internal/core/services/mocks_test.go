package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studymate-ai/studymate/internal/adapters/driven/embedding/hashed"
	"github.com/studymate-ai/studymate/internal/adapters/driven/storage/memory"
	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// failingEmbedder always errors, exercising the zero-vector degradation
// path.
type failingEmbedder struct{}

func (failingEmbedder) Embed(_ context.Context, _ string) (domain.Embedding, error) {
	return domain.Embedding{}, errors.New("embedding backend down")
}
func (failingEmbedder) Dimensions() int              { return domain.EmbeddingDimensions }
func (failingEmbedder) ModelName() string            { return "failing" }
func (failingEmbedder) Ping(_ context.Context) error { return errors.New("down") }
func (failingEmbedder) Close() error                 { return nil }

// stubGenerator returns canned text or a canned error.
type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}
func (g *stubGenerator) ModelName() string            { return "stub" }
func (g *stubGenerator) Ping(_ context.Context) error { return nil }
func (g *stubGenerator) Close() error                 { return nil }

// testEngine bundles a real in-memory store, the deterministic
// embedder, and every service wired the way the CLI wires them.
type testEngine struct {
	store     *memory.DocumentStore
	index     *IndexService
	retrieval *RetrievalService
	themes    *ThemeService
	settings  domain.Settings
}

func newTestEngine(t *testing.T) *testEngine {
	t.Helper()
	store := memory.NewDocumentStore()
	settings := domain.DefaultSettings()
	embedder := hashed.NewEmbeddingService()
	retrieval := NewRetrievalService(store, embedder, settings)
	return &testEngine{
		store:     store,
		index:     NewIndexService(store, embedder, settings),
		retrieval: retrieval,
		themes:    NewThemeService(store, retrieval, settings),
		settings:  settings,
	}
}

func (e *testEngine) ingest(t *testing.T, id, text string) *domain.Document {
	t.Helper()
	doc, err := e.index.Ingest(context.Background(), id, text, id)
	require.NoError(t, err)
	return doc
}

// Study-material fixtures shared across the service tests.
const (
	textbookText = "Chapter 1 Introduction\n" +
		"Overfitting is when a model learns the training data too well. " +
		"Regularization is the key technique to prevent overfitting."

	pastaText = "Cooking pasta requires salted boiling water and patience."

	paperOneText = "Abstract\n" +
		"Ensemble methods combine many models into one stronger predictor. " +
		"Bagging is one of the ensemble methods these papers study closely."

	paperTwoText = "Abstract\n" +
		"Boosting is an ensemble methods technique. " +
		"These papers say it reweights hard examples."

	biologyText = "The mitochondria produce energy for the cell through respiration. " +
		"Cellular structures vary widely between organisms and tissues, and membranes regulate transport. " +
		"Proteins fold into complex shapes that determine function, while enzymes catalyse reactions. " +
		"Photosynthesis converts light into chemical energy inside chloroplasts of green plants. " +
		"Ribosomes assemble proteins from amino acids following the messenger template. " +
		"The nucleus stores genetic material and coordinates growth, metabolism and reproduction of the cell."
)
