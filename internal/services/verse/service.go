// Package verse holds the static pool of reward strings granted on the
// verse spin outcome.
package verse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ostapdev/teamwheel/internal/dependencies/random"
)

// NotFound is returned when the pool is empty
const NotFound = "Стих не найден"

// Service picks a uniformly random verse from a read-only pool
type Service struct {
	random random.Random
	logger *slog.Logger

	mu     sync.RWMutex
	verses []string
}

// New creates an empty verse service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// LoadFromFile loads the pool from a JSON file of the form
// {"verses": ["...", ...]}.
func (s *Service) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read verses: %w", err)
	}

	var doc struct {
		Verses []string `json:"verses"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse verses: %w", err)
	}

	s.LoadVerses(doc.Verses)
	s.logger.Info("verse pool loaded", slog.Int("count", len(doc.Verses)))
	return nil
}

// LoadVerses replaces the pool
func (s *Service) LoadVerses(verses []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verses = append([]string(nil), verses...)
}

// Pick returns one verse uniformly at random, or the NotFound sentinel
// when the pool is empty.
func (s *Service) Pick() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.verses) == 0 {
		return NotFound
	}
	return s.verses[s.random.Intn(len(s.verses))]
}

// Count returns the pool size
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.verses)
}
