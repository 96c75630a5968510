package servicelib

import (
	"github.com/eirikbell/rental/customer"
	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/transaction"
)

// Catalog everything a loader produced, in file order
type Catalog struct {
	Items        []*item.Item
	Customers    []*customer.Customer
	Transactions []transaction.Transaction
	// Rejected lines that could not be turned into records
	Rejected []error
}

// Source the loading collaborator feeding the store. Parsing and file
// formats are its business, the store only sees constructed records.
type Source interface {
	Load() (*Catalog, error)
}
