package handlers

import (
	"os"
	"sync"

	"carrental/internal/repositories"
	"carrental/internal/services"
)

var (
	setupMu      sync.Mutex
	catalogCache *services.CatalogCache
	flowStore    *services.FlowStore
)

// Setup bootstraps the schema, seeds first-use data, and builds the shared
// catalog cache and flow registry. Idempotent; called once by the router.
func Setup() error {
	setupMu.Lock()
	defer setupMu.Unlock()

	if catalogCache != nil {
		return nil
	}

	catalogRepo := repositories.CatalogRepository{}
	if err := catalogRepo.Bootstrap(); err != nil {
		return err
	}
	if err := (repositories.BookingRepository{}).Bootstrap(); err != nil {
		return err
	}
	if err := (repositories.PaymentRepository{}).Bootstrap(); err != nil {
		return err
	}
	if err := (repositories.UserRepository{}).Bootstrap(os.Getenv("ADMIN_PASS")); err != nil {
		return err
	}

	cache := services.NewCatalogCache()
	if err := cache.Reload(catalogRepo); err != nil {
		return err
	}

	catalogCache = cache
	flowStore = services.NewFlowStore()
	return nil
}
