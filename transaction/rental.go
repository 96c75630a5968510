package transaction

import (
	"fmt"
	"io"
	"strings"

	"github.com/eirikbell/rental/customer"
	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/registry"
	"github.com/eirikbell/rental/tree"
	"github.com/pkg/errors"
)

// rental the lookup shared by borrows and returns
type rental struct {
	header
	media        byte
	attr1, attr2 string
}

// Media format code, D for DVD
func (r *rental) Media() byte {
	return r.media
}

// SearchKey builds the item the transaction is looking for. Unparsable
// numbers stay zero and simply find nothing.
func (r *rental) SearchKey() (*item.Item, error) {
	switch r.category {
	case item.Classic:
		var month, year int
		fmt.Sscan(r.attr1, &month, &year)
		return item.ClassicKey(month, year, strings.TrimSpace(r.attr2)), nil
	case item.Drama:
		return item.DramaKey(strings.TrimSpace(r.attr1), strings.TrimSpace(r.attr2)), nil
	case item.Comedy:
		var year int
		fmt.Sscan(r.attr2, &year)
		return item.ComedyKey(strings.TrimSpace(r.attr1), year), nil
	}

	return nil, errors.Wrapf(item.ErrUnknownCategory, "code %q", r.category)
}

func (r *rental) lookup(idx *tree.Index, customers *registry.Registry) (*customer.Customer, *item.Item, error) {
	c, ok := customers.Get(r.customerID)
	if !ok {
		return nil, nil, errors.WithStack(ErrCustomerNotFound)
	}

	key, err := r.SearchKey()
	if err != nil {
		return nil, nil, err
	}

	found, ok := idx.Retrieve(key)
	if !ok {
		return nil, nil, errors.WithStack(ErrItemNotFound)
	}

	return c, found, nil
}

// Borrow takes a copy of an item out for a customer
type Borrow struct {
	rental
}

// NewBorrow borrow transaction
func NewBorrow(customerID int, media byte, category item.Category, attr1, attr2 string) *Borrow {
	return &Borrow{rental{header: newHeader(KindBorrow, customerID, category), media: media, attr1: attr1, attr2: attr2}}
}

// Execute decrements the item's stock and logs the borrow on the customer.
// Nothing changes when the customer or item is missing or the item is
// already out of stock.
func (b *Borrow) Execute(idx *tree.Index, customers *registry.Registry, _ io.Writer) error {
	c, found, err := b.lookup(idx, customers)
	if err != nil {
		return err
	}

	if err := found.Borrow(); err != nil {
		return errors.WithStack(err)
	}

	c.AddTransaction("Borrowed " + found.Title)
	return nil
}

// Return brings a borrowed copy back
type Return struct {
	rental
}

// NewReturn return transaction
func NewReturn(customerID int, media byte, category item.Category, attr1, attr2 string) *Return {
	return &Return{rental{header: newHeader(KindReturn, customerID, category), media: media, attr1: attr1, attr2: attr2}}
}

// Execute increments the item's stock and logs the return on the customer
func (r *Return) Execute(idx *tree.Index, customers *registry.Registry, _ io.Writer) error {
	c, found, err := r.lookup(idx, customers)
	if err != nil {
		return err
	}

	found.Return()
	c.AddTransaction("Returned " + found.Title)
	return nil
}
