package repo

import (
	"github.com/GlebRadaev/courier-settlement/internal/pg"
	orderrepo "github.com/GlebRadaev/courier-settlement/internal/repo/order-repo"
	riderrepo "github.com/GlebRadaev/courier-settlement/internal/repo/rider-repo"
	settlementrepo "github.com/GlebRadaev/courier-settlement/internal/repo/settlement-repo"
	tariffrepo "github.com/GlebRadaev/courier-settlement/internal/repo/tariff-repo"
	"github.com/GlebRadaev/courier-settlement/internal/service/riderservice"
	"github.com/GlebRadaev/courier-settlement/internal/service/settlementservice"
)

// OrderRepo serves both the scope ledger and the rider ledger.
type OrderRepo interface {
	settlementservice.OrderRepo
	riderservice.OrderRepo
}

type Repositories struct {
	OrderRepo      OrderRepo
	TariffRepo     settlementservice.TariffRepo
	SettlementRepo settlementservice.StateRepo
	RiderRepo      riderservice.ValidationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:      orderrepo.New(conn, txManager),
		TariffRepo:     tariffrepo.New(conn),
		SettlementRepo: settlementrepo.New(conn, txManager),
		RiderRepo:      riderrepo.New(conn, txManager),
	}
}
