package customer

import (
	"fmt"
	"io"
)

// Customer registered renter with a chronological log of transactions
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	log       []string
}

// New customer with an empty log
func New(id int, first, last string) *Customer {
	return &Customer{ID: id, FirstName: first, LastName: last}
}

// AddTransaction appends an entry to the log
func (c *Customer) AddTransaction(entry string) {
	c.log = append(c.log, entry)
}

// History copy of the log, oldest entry first
func (c *Customer) History() []string {
	out := make([]string, len(c.log))
	copy(out, c.log)
	return out
}

// Display writes the customer name, last name first
func (c *Customer) Display(w io.Writer) {
	fmt.Fprintf(w, "%s %s", c.LastName, c.FirstName)
}

func (c *Customer) String() string {
	return fmt.Sprintf("%d %s %s", c.ID, c.LastName, c.FirstName)
}
