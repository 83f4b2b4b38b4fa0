package services

import (
	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"
)

// CatalogService runs the admin catalog mutations. Every successful mutation
// reloads the shared cache before returning, which is what keeps open booking
// flows quoting against current rates.
type CatalogService struct {
	Repo      repositories.CatalogRepository
	Cache     *CatalogCache
	RequestID string
}

func (s CatalogService) List() ([]models.Car, error) {
	return s.Repo.List()
}

func (s CatalogService) Add(model string, dailyRate int64) error {
	if err := s.Repo.Add(model, dailyRate); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "add", "model="+model)
	return s.reloadCache()
}

func (s CatalogService) UpdateRate(model string, dailyRate int64) error {
	if err := s.Repo.UpdateRate(model, dailyRate); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "update_rate", "model="+model)
	return s.reloadCache()
}

func (s CatalogService) Remove(model string) error {
	if err := s.Repo.Remove(model); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "remove", "model="+model)
	return s.reloadCache()
}

func (s CatalogService) reloadCache() error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Reload(s.Repo)
}
