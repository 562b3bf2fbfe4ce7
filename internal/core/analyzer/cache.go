package analyzer

import (
	"sync"

	"github.com/schemaforge/servergen/internal/core/errs"
	"github.com/schemaforge/servergen/internal/core/ir"
)

// Cache holds every model's UnifiedModelAnalysis for the lifetime of one
// generation run. Safe for concurrent reads and writes; every access goes
// through its read-write mutex.
type Cache struct {
	mu            sync.RWMutex
	analyses      map[string]UnifiedModelAnalysis
	expectedCount int
}

// NewCache creates an empty cache that expects expectedCount analyses to
// be filled in before GetMissingAnalysis reports completeness.
func NewCache(expectedCount int) *Cache {
	return &Cache{analyses: make(map[string]UnifiedModelAnalysis, expectedCount), expectedCount: expectedCount}
}

// AnalyzeSchema analyzes every model in schema and returns a fully
// populated cache, the common case: the analyze-models phase calls this
// once and every later phase only ever reads from the result.
func AnalyzeSchema(schema ir.Schema) *Cache {
	models := schema.Models()
	cache := NewCache(len(models))
	for _, m := range models {
		cache.Set(m.Name(), Analyze(m, schema))
	}
	return cache
}

// Set stores or replaces a model's analysis.
func (c *Cache) Set(modelName string, a UnifiedModelAnalysis) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.analyses[modelName] = a
}

// GetAnalysis returns a model's analysis, or a *errs.AnalysisMissing error
// when absent. Use this where the calling phase's invariants guarantee the
// analyze-models phase already ran for every model in scope.
func (c *Cache) GetAnalysis(modelName string) (UnifiedModelAnalysis, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.analyses[modelName]
	if !ok {
		return UnifiedModelAnalysis{}, &errs.AnalysisMissing{Model: modelName}
	}
	return a, nil
}

// TryGetAnalysis returns a model's analysis and whether it was present,
// for optional enrichments that can tolerate a miss.
func (c *Cache) TryGetAnalysis(modelName string) (UnifiedModelAnalysis, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.analyses[modelName]
	return a, ok
}

// GetExpectedCount returns how many analyses the cache was constructed to
// hold.
func (c *Cache) GetExpectedCount() int {
	return c.expectedCount
}

// GetMissingAnalysis returns, of the given model names, those with no
// stored analysis — used by the validation phase to assert completeness
// before any generation phase begins.
func (c *Cache) GetMissingAnalysis(modelNames []string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var missing []string
	for _, name := range modelNames {
		if _, ok := c.analyses[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Len reports how many analyses are currently stored.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.analyses)
}
