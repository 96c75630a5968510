package store

import (
	"io"
	"log/slog"
	"os"

	"github.com/eirikbell/rental/customer"
	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/registry"
	"github.com/eirikbell/rental/servicelib"
	"github.com/eirikbell/rental/transaction"
	"github.com/eirikbell/rental/tree"
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateItem an equal item is already in the genre's index
	ErrDuplicateItem = errors.New("duplicate movie")
	// ErrNilRecord loader handed over an empty record
	ErrNilRecord = errors.New("null record")
)

// DefaultInventoryOrder indexes an inventory listing walks through. Classics
// are listed twice and dramas never, which is how listings have always come
// out; pass WithInventoryOrder to change it.
var DefaultInventoryOrder = []item.Category{item.Classic, item.Comedy, item.Classic}

// Summary outcome counts of one Process run
type Summary struct {
	Executed int
	Failed   int
	Skipped  int
}

// Store owns the genre indexes, the customer registry and the queue of
// transactions still to run
type Store struct {
	indexes      map[item.Category]*tree.Index
	customers    *registry.Registry
	transactions []transaction.Transaction
	inventory    []item.Category
	out          io.Writer
	log          *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithOutput where listings and error reports are written, stdout by default
func WithOutput(w io.Writer) Option {
	return func(s *Store) {
		s.out = w
	}
}

// WithLogger logger for diagnostics, slog.Default() by default
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithInventoryOrder indexes listed by an inventory transaction, in order
func WithInventoryOrder(categories ...item.Category) Option {
	return func(s *Store) {
		s.inventory = append([]item.Category(nil), categories...)
	}
}

// New store with a registry of the given bucket count
func New(buckets int, opts ...Option) (*Store, error) {
	customers, err := registry.New(buckets)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot create customer registry")
	}

	s := &Store{
		indexes:   make(map[item.Category]*tree.Index, len(item.Categories)),
		customers: customers,
		inventory: DefaultInventoryOrder,
		out:       os.Stdout,
		log:       slog.Default(),
	}
	for _, c := range item.Categories {
		s.indexes[c] = tree.New()
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Index of the given genre
func (s *Store) Index(c item.Category) (*tree.Index, bool) {
	idx, ok := s.indexes[c]
	return idx, ok
}

// Customers registry of the store
func (s *Store) Customers() *registry.Registry {
	return s.customers
}

// Pending number of transactions waiting for Process
func (s *Store) Pending() int {
	return len(s.transactions)
}

// AddItem inserts i into the index of its genre
func (s *Store) AddItem(i *item.Item) error {
	if i == nil {
		return errors.WithStack(ErrNilRecord)
	}

	idx, ok := s.indexes[i.Category]
	if !ok {
		return errors.Wrapf(item.ErrUnknownCategory, "code %q", i.Category)
	}

	if !idx.Insert(i) {
		return errors.Wrapf(ErrDuplicateItem, "%s %q", i.Category.Name(), i.Title)
	}

	return nil
}

// AddCustomer registers c, replacing any customer with the same id. Returns
// true when one was replaced.
func (s *Store) AddCustomer(c *customer.Customer) bool {
	return s.customers.Insert(c)
}

// Enqueue appends tx to the transactions run by the next Process
func (s *Store) Enqueue(tx transaction.Transaction) {
	s.transactions = append(s.transactions, tx)
}

// Load fills the store from src. Records the store refuses are logged and
// skipped, only a failing source is an error.
func (s *Store) Load(src servicelib.Source) error {
	catalog, err := src.Load()
	if err != nil {
		return errors.Wrap(err, "Loading failed")
	}
	if catalog == nil {
		catalog = &servicelib.Catalog{}
	}

	for _, rejected := range catalog.Rejected {
		s.log.Warn("skipping input line", "err", rejected)
	}

	for _, i := range catalog.Items {
		if err := s.AddItem(i); err != nil {
			s.log.Warn("skipping movie", "err", err)
		}
	}

	for _, c := range catalog.Customers {
		if c == nil {
			continue
		}
		if s.AddCustomer(c) {
			s.log.Warn("customer replaced", "customer", c.ID)
		}
	}

	for _, tx := range catalog.Transactions {
		s.Enqueue(tx)
	}

	s.log.Info("store loaded",
		"classics", s.indexes[item.Classic].Len(),
		"dramas", s.indexes[item.Drama].Len(),
		"comedies", s.indexes[item.Comedy].Len(),
		"customers", s.customers.Len(),
		"transactions", len(s.transactions))

	return nil
}

// Close drops every item, customer and pending transaction
func (s *Store) Close() {
	for _, idx := range s.indexes {
		idx.Clear()
	}
	s.customers.Clear()
	for n := range s.transactions {
		s.transactions[n] = nil
	}
	s.transactions = s.transactions[:0]
}
