package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/studymate-ai/studymate/internal/core/domain"
	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored in a TOML file within the
// StudyMate config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.studymate/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".studymate")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a raw configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetFloat retrieves a float configuration value.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Load reads the config file from disk, replacing in-memory state.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	data := make(map[string]any)
	if err := toml.Unmarshal(content, &data); err != nil {
		return err
	}
	s.data = data
	return nil
}

// save writes current state to disk. Caller must hold the write lock.
func (s *ConfigStore) save() error {
	content, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, content, 0600)
}

// Settings keys recognised in config.toml.
const (
	KeyChunkSize            = "chunking.size"
	KeyChunkOverlap         = "chunking.overlap"
	KeyMaxKeywords          = "keywords.max"
	KeyTopK                 = "retrieval.top_k"
	KeyThemeTopK            = "retrieval.theme_top_k"
	KeyScoreThreshold       = "retrieval.score_threshold"
	KeyTextbookBoost        = "retrieval.textbook_boost"
	KeyKeywordBoost         = "retrieval.keyword_boost"
	KeyConfidenceScale      = "answer.confidence_scale"
	KeyConceptOverlap       = "themes.concept_overlap"
	KeyShortAnswerThreshold = "quiz.short_answer_threshold"
)

// Settings builds engine settings from the store, starting from the
// defaults and applying every key present in the file. Unknown or
// absent keys keep their defaults.
func (s *ConfigStore) Settings() domain.Settings {
	settings := domain.DefaultSettings()

	if v := s.GetInt(KeyChunkSize); v > 0 {
		settings.ChunkSize = v
	}
	if _, ok := s.Get(KeyChunkOverlap); ok {
		settings.ChunkOverlap = s.GetInt(KeyChunkOverlap)
	}
	if v := s.GetInt(KeyMaxKeywords); v > 0 {
		settings.MaxKeywords = v
	}
	if v := s.GetInt(KeyTopK); v > 0 {
		settings.TopK = v
	}
	if v := s.GetInt(KeyThemeTopK); v > 0 {
		settings.ThemeTopK = v
	}
	if v := s.GetFloat(KeyScoreThreshold); v > 0 {
		settings.ScoreThreshold = v
	}
	if v := s.GetFloat(KeyTextbookBoost); v > 0 {
		settings.TextbookBoost = v
	}
	if v := s.GetFloat(KeyKeywordBoost); v > 0 {
		settings.KeywordBoost = v
	}
	if v := s.GetFloat(KeyConfidenceScale); v > 0 {
		settings.ConfidenceScale = v
	}
	if v := s.GetFloat(KeyConceptOverlap); v > 0 {
		settings.ConceptOverlap = v
	}
	if v := s.GetFloat(KeyShortAnswerThreshold); v > 0 {
		settings.ShortAnswerThreshold = v
	}

	return settings
}
