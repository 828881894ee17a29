package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer      CustomerSvcFacade
	Order         OrderSvcFacade
	Payment       PaymentSvcFacade
	ReturnedOrder ReturnedOrderSvcFacade
	Inventory     InventorySvcFacade
	Ledger        LedgerSvcFacade
	User          UserSvcFacade
	Token         TokenSvcFacade
}
