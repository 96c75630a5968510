package transaction

import (
	"fmt"
	"io"

	"github.com/eirikbell/rental/registry"
	"github.com/eirikbell/rental/tree"
	"github.com/pkg/errors"
)

const (
	historyRule   = "--------------------------------------------------------------"
	inventoryRule = "------------------------------------------------------"
)

// History prints a customer's log
type History struct {
	header
}

// NewHistory history transaction for a customer
func NewHistory(customerID int) *History {
	return &History{newHeader(KindHistory, customerID, 0)}
}

// Execute prints the log oldest first and then records the viewing, so the
// printed log never contains its own entry. An empty log prints a notice
// and is left empty. The index is not used.
func (h *History) Execute(_ *tree.Index, customers *registry.Registry, w io.Writer) error {
	c, ok := customers.Get(h.customerID)
	if !ok {
		return errors.WithStack(ErrCustomerNotFound)
	}

	entries := c.History()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recorded transactions for this customer.")
		return nil
	}

	fmt.Fprint(w, "Transaction History for ")
	c.Display(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, historyRule)
	for _, entry := range entries {
		fmt.Fprintln(w, entry)
	}
	fmt.Fprintln(w)

	c.AddTransaction("Viewed History")
	return nil
}

// Inventory lists an index
type Inventory struct {
	header
}

// NewInventory inventory listing transaction
func NewInventory() *Inventory {
	return &Inventory{newHeader(KindInventory, 0, 0)}
}

// Execute prints every item of idx in order. It cannot fail.
func (i *Inventory) Execute(idx *tree.Index, _ *registry.Registry, w io.Writer) error {
	fmt.Fprintln(w, "Available Movies: ")
	fmt.Fprintln(w, inventoryRule)
	idx.Display(w)
	fmt.Fprintln(w)
	return nil
}

var (
	_ Transaction = (*Borrow)(nil)
	_ Transaction = (*Return)(nil)
	_ Transaction = (*History)(nil)
	_ Transaction = (*Inventory)(nil)
)
