package pgsql

import (
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		OrderRepo:         newPgxOrderRepository(dbPool),
		PaymentRepo:       newPgxPaymentRepository(dbPool),
		ReturnedOrderRepo: newPgxReturnedOrderRepository(dbPool),
		InventoryRepo:     newPgxInventoryRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
