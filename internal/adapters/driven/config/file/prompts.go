package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/studymate-ai/studymate/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads instruction templates from user-editable files on
// disk, with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when
// first accessed, not in the constructor. This makes testing easier
// and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains the embedded per-intent instruction blocks.
// The retrieved chunk context is appended after the template at prompt
// assembly time.
var defaultPrompts = map[string]string{
	driven.PromptDefinition: `Based on the study materials below, give a precise definition in answer to the question. Quote the defining sentence where possible and do not add facts that are not in the materials.`,

	driven.PromptExplanation: `Based on the study materials below, explain the answer step by step in plain language. Stay strictly within what the materials state.`,

	driven.PromptSummary: `Summarise the study materials below as they relate to the question. Keep it to a few sentences and cover only what the materials say.`,

	driven.PromptComparison: `Using only the study materials below, compare the items the question asks about. State similarities first, then differences.`,

	driven.PromptExample: `Using only the study materials below, answer with concrete examples. If the materials give named examples, use those.`,

	driven.PromptGeneral: `Answer the question using only the study materials below. If the materials do not contain the answer, say so.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.studymate/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".studymate", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the template for the given name.
// On first call, initialises the prompt directory and creates default
// files. Falls back to the embedded default if the file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	if err != nil {
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the cache, forcing fresh loads on next access.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]string)
}

// initialise creates the prompt directory and writes default files for
// any template that does not yet exist on disk.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = err
		return
	}
	for name, content := range defaultPrompts {
		path := s.promptPath(name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = err
				return
			}
		}
	}
}

// loadFromFile reads a template file from the prompt directory.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	content, err := os.ReadFile(s.promptPath(name))
	if err != nil {
		return "", err
	}
	prompt := strings.TrimSpace(string(content))
	if prompt == "" {
		return "", fmt.Errorf("prompt file is empty")
	}
	return prompt, nil
}

func (s *PromptStore) promptPath(name string) string {
	return filepath.Join(s.promptDir, name+".txt")
}
