package domain

// LegacyAggregate is the single quantity/price/paid triple customers carried
// before itemised records existed. It only matters when a customer has no records.
type LegacyAggregate struct {
	Quantity Numeric `json:"quantity"`
	Price    Numeric `json:"price"`
	Paid     Numeric `json:"paid"`
}

// Customer is a shop customer with a running account.
type Customer struct {
	CustomerID int64           `json:"customerID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	Notes      string          `json:"notes"`
	IsActive   bool            `json:"isActive"`
	Legacy     LegacyAggregate `json:"legacy"`
	AuditFields
}
