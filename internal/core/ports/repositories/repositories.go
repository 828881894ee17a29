package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo      CustomerRepositoryFacade
	OrderRepo         OrderRepositoryFacade
	PaymentRepo       PaymentRepositoryFacade
	ReturnedOrderRepo ReturnedOrderRepositoryFacade
	InventoryRepo     InventoryRepositoryFacade
	UserRepo          UserRepositoryFacade
}

// PageCursor positions a keyset page after the row with this sort key and id.
type PageCursor struct {
	Key string
	ID  int64
}
