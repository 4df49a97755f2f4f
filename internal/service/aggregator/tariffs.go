package aggregator

import (
	"context"
	"sync"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

type TariffLookup interface {
	GetActiveTariff(ctx context.Context, courierID, zoneID int64) (*domain.ZoneTariff, error)
}

type tariffKey struct {
	courierID int64
	zoneID    int64
}

// TariffCache remembers tariff lookups, including misses, for the lifetime
// of one request so each (courier, zone) is read once.
type TariffCache struct {
	lookup  TariffLookup
	mu      sync.Mutex
	entries map[tariffKey]*domain.ZoneTariff
}

func NewTariffCache(lookup TariffLookup) *TariffCache {
	return &TariffCache{
		lookup:  lookup,
		entries: make(map[tariffKey]*domain.ZoneTariff),
	}
}

func (c *TariffCache) GetActiveTariff(ctx context.Context, courierID, zoneID int64) (*domain.ZoneTariff, error) {
	key := tariffKey{courierID: courierID, zoneID: zoneID}

	c.mu.Lock()
	tariff, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return tariff, nil
	}

	tariff, err := c.lookup.GetActiveTariff(ctx, courierID, zoneID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = tariff
	c.mu.Unlock()
	return tariff, nil
}
