package service

import (
	"github.com/GlebRadaev/courier-settlement/internal/cache"
	"github.com/GlebRadaev/courier-settlement/internal/handlers/riders"
	"github.com/GlebRadaev/courier-settlement/internal/handlers/settlements"
	"github.com/GlebRadaev/courier-settlement/internal/metrics"
	"github.com/GlebRadaev/courier-settlement/internal/pg"
	"github.com/GlebRadaev/courier-settlement/internal/repo"
	"github.com/GlebRadaev/courier-settlement/internal/service/riderservice"
	"github.com/GlebRadaev/courier-settlement/internal/service/settlementservice"
)

type Services struct {
	SettlementService settlements.Service
	RiderService      riders.Service
}

// Deps are the optional collaborators shared by the services. A nil Cache
// disables summary caching.
type Deps struct {
	Cache       *cache.SummaryCache
	Metrics     *metrics.Metrics
	Concurrency int
}

func New(repo *repo.Repositories, txManager pg.TXManager, deps Deps) *Services {
	opts := []settlementservice.Option{
		settlementservice.WithMetrics(deps.Metrics),
		settlementservice.WithConcurrency(deps.Concurrency),
	}
	if deps.Cache != nil {
		opts = append(opts, settlementservice.WithCache(deps.Cache))
	}
	settlementService := settlementservice.New(repo.OrderRepo, repo.TariffRepo, repo.SettlementRepo, txManager, opts...)
	riderService := riderservice.New(repo.OrderRepo, repo.TariffRepo, repo.RiderRepo, txManager,
		riderservice.WithMetrics(deps.Metrics))

	return &Services{
		SettlementService: settlementService,
		RiderService:      riderService,
	}
}
