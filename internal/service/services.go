package service

import (
	"github.com/dom/rift-companion/internal/config"
	"github.com/dom/rift-companion/internal/repository"
)

type Services struct {
	Catalog *CatalogService
	Advisor *AdvisorService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Catalog: NewCatalogService(repos),
		Advisor: NewAdvisorService(repos),
	}
}
