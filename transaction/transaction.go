package transaction

import (
	"io"
	"strings"

	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/registry"
	"github.com/eirikbell/rental/tree"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCustomerNotFound no customer holds the transaction's id
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrItemNotFound no item in the index matches the search key
	ErrItemNotFound = errors.New("movie not found")
	// ErrUnknownKind code is not one of the transaction kinds
	ErrUnknownKind = errors.New("unknown transaction code")
)

// Kind transaction code as it appears in the command file
type Kind byte

// Transaction codes
const (
	KindBorrow    Kind = 'B'
	KindReturn    Kind = 'R'
	KindHistory   Kind = 'H'
	KindInventory Kind = 'I'
)

// ParseKind maps a one letter code to its Kind
func ParseKind(code string) (Kind, error) {
	code = strings.TrimSpace(code)
	if len(code) == 1 {
		switch k := Kind(code[0]); k {
		case KindBorrow, KindReturn, KindHistory, KindInventory:
			return k, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownKind, "code %q", code)
}

func (k Kind) String() string {
	return string(rune(k))
}

// Transaction one command replayed against the store. Execute gets the index
// of the transaction's genre (or whichever index the caller routes it to)
// and the customer registry, and writes any listing to w.
type Transaction interface {
	ID() string
	Kind() Kind
	CustomerID() int
	Category() item.Category
	Execute(idx *tree.Index, customers *registry.Registry, w io.Writer) error
}

type header struct {
	id         string
	kind       Kind
	customerID int
	category   item.Category
}

func newHeader(kind Kind, customerID int, category item.Category) header {
	return header{id: uuid.NewString(), kind: kind, customerID: customerID, category: category}
}

func (h header) ID() string              { return h.id }
func (h header) Kind() Kind              { return h.kind }
func (h header) CustomerID() int         { return h.customerID }
func (h header) Category() item.Category { return h.category }

// New builds a transaction of the given kind. The two attributes carry the
// genre specific search fields of a borrow or return:
//
//	classic: "month year", major actor
//	drama:   director, title
//	comedy:  title, year
func New(kind Kind, customerID int, media byte, category item.Category, attr1, attr2 string) (Transaction, error) {
	switch kind {
	case KindBorrow:
		return NewBorrow(customerID, media, category, attr1, attr2), nil
	case KindReturn:
		return NewReturn(customerID, media, category, attr1, attr2), nil
	case KindHistory:
		return NewHistory(customerID), nil
	case KindInventory:
		return NewInventory(), nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "code %q", kind)
}
