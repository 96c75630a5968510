package registry

import (
	"github.com/eirikbell/rental/customer"
	"github.com/pkg/errors"
)

// DefaultSize bucket count used when none is configured
const DefaultSize = 101

// ErrInvalidSize bucket count must be positive
var ErrInvalidSize = errors.New("registry size must be greater than zero")

// Registry fixed bucket hash table of customers keyed by id. Collisions are
// chained in insertion order.
type Registry struct {
	buckets [][]*customer.Customer
	count   int
}

// New registry with size buckets
func New(size int) (*Registry, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %d", size)
	}

	return &Registry{buckets: make([][]*customer.Customer, size)}, nil
}

// Size number of buckets
func (r *Registry) Size() int {
	return len(r.buckets)
}

// Len number of customers stored
func (r *Registry) Len() int {
	return r.count
}

func (r *Registry) hash(id int) int {
	h := id % len(r.buckets)
	if h < 0 {
		h += len(r.buckets)
	}
	return h
}

// Insert stores c, replacing in place any customer already holding its id.
// Returns true when an existing entry was replaced.
func (r *Registry) Insert(c *customer.Customer) bool {
	if c == nil {
		return false
	}

	h := r.hash(c.ID)
	chain := r.buckets[h]
	for n, existing := range chain {
		if existing.ID == c.ID {
			chain[n] = c
			return true
		}
	}

	r.buckets[h] = append(chain, c)
	r.count++
	return false
}

// Remove drops the customer with the given id
func (r *Registry) Remove(id int) bool {
	h := r.hash(id)
	chain := r.buckets[h]
	for n, existing := range chain {
		if existing.ID == id {
			copy(chain[n:], chain[n+1:])
			chain[len(chain)-1] = nil
			r.buckets[h] = chain[:len(chain)-1]
			r.count--
			return true
		}
	}

	return false
}

// Get customer with the given id. The registry keeps ownership.
func (r *Registry) Get(id int) (*customer.Customer, bool) {
	for _, c := range r.buckets[r.hash(id)] {
		if c.ID == id {
			return c, true
		}
	}

	return nil, false
}

// Each visits every customer, bucket by bucket, stopping when fn returns false
func (r *Registry) Each(fn func(*customer.Customer) bool) {
	for _, chain := range r.buckets {
		for _, c := range chain {
			if !fn(c) {
				return
			}
		}
	}
}

// Clear drops every customer but keeps the buckets for reuse
func (r *Registry) Clear() {
	for h := range r.buckets {
		chain := r.buckets[h]
		for n := range chain {
			chain[n] = nil
		}
		r.buckets[h] = chain[:0]
	}
	r.count = 0
}
