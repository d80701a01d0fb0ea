package mocks

import (
	"fmt"

	"github.com/ostapdev/teamwheel/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// WeightedResults is a queue of results to return from WeightedIndex
	WeightedResults []int
	weightedIndex   int

	tokenCounter int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// WeightedIndex returns the next queued result, or 0 if none remaining
func (r *MockRandom) WeightedIndex(weights []int) int {
	if r.weightedIndex >= len(r.WeightedResults) {
		return 0
	}
	result := r.WeightedResults[r.weightedIndex]
	r.weightedIndex++
	return result
}

// Token returns deterministic sequential tokens with the given prefix
func (r *MockRandom) Token(prefix string) string {
	r.tokenCounter++
	return fmt.Sprintf("%s%08d", prefix, r.tokenCounter)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueWeighted adds values to the WeightedIndex result queue
func (r *MockRandom) QueueWeighted(values ...int) {
	r.WeightedResults = append(r.WeightedResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.WeightedResults = nil
	r.weightedIndex = 0
	r.tokenCounter = 0
}
