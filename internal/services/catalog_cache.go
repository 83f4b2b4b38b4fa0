package services

import (
	"sync"

	"carrental/internal/repositories"
)

// CatalogCache is the in-process read-through view of the catalog used by the
// booking flow. It never writes back; admin mutations reload it synchronously
// before returning, so a quote can never see a pre-mutation rate.
type CatalogCache struct {
	mu     sync.RWMutex
	rates  map[string]int64
	models []string
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{rates: map[string]int64{}}
}

// Reload rebuilds the snapshot from the catalog store and swaps it in atomically.
func (c *CatalogCache) Reload(repo repositories.CatalogRepository) error {
	cars, err := repo.List()
	if err != nil {
		return err
	}

	rates := make(map[string]int64, len(cars))
	names := make([]string, 0, len(cars))
	for _, car := range cars {
		rates[car.Model] = car.DailyRate
		names = append(names, car.Model)
	}

	c.mu.Lock()
	c.rates = rates
	c.models = names
	c.mu.Unlock()
	return nil
}

// Rate returns the daily rate for a model and whether the model is cataloged.
func (c *CatalogCache) Rate(model string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rate, ok := c.rates[model]
	return rate, ok
}

// Models returns the cataloged model names in store order (ascending by name).
func (c *CatalogCache) Models() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.models))
	copy(out, c.models)
	return out
}

func (c *CatalogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.models)
}
