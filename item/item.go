package item

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrOutOfStock borrow attempted on an item whose stock is already negative
var ErrOutOfStock = errors.New("this Movie is out of stock")

// ErrUnknownCategory code is not one of the catalog genres
var ErrUnknownCategory = errors.New("unknown genre")

// Category one of the three fixed genres of the catalog
type Category byte

// Genre codes as they appear in the input files
const (
	Classic Category = 'C'
	Drama   Category = 'D'
	Comedy  Category = 'F'
)

// Categories every known genre, in catalog order
var Categories = []Category{Classic, Drama, Comedy}

// ParseCategory maps a one letter genre code to its Category
func ParseCategory(code string) (Category, error) {
	code = strings.TrimSpace(code)
	if len(code) != 1 {
		return 0, errors.Wrapf(ErrUnknownCategory, "code %q", code)
	}

	c := Category(code[0])
	if !c.Valid() {
		return 0, errors.Wrapf(ErrUnknownCategory, "code %q", code)
	}

	return c, nil
}

// Valid reports whether c is a known genre
func (c Category) Valid() bool {
	switch c {
	case Classic, Drama, Comedy:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(rune(c))
}

// Name human readable genre name
func (c Category) Name() string {
	switch c {
	case Classic:
		return "classic"
	case Drama:
		return "drama"
	case Comedy:
		return "comedy"
	}
	return "unknown"
}

// Item rentable title in the catalog. Actor and Month are only meaningful
// for classics.
type Item struct {
	Category Category
	Stock    int
	Director string
	Title    string
	Year     int
	Actor    string
	Month    int
}

// Compare orders a against b by the genre rule of a. The second result is
// false when the two items are not of the same genre, in which case the
// ordering is meaningless.
//
//	classic: year, month, actor
//	drama:   director, title
//	comedy:  title, year
func (a *Item) Compare(b *Item) (int, bool) {
	if a == nil || b == nil || a.Category != b.Category {
		return 0, false
	}

	switch a.Category {
	case Classic:
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c, true
		}
		if c := cmp.Compare(a.Month, b.Month); c != 0 {
			return c, true
		}
		return strings.Compare(a.Actor, b.Actor), true
	case Drama:
		if c := strings.Compare(a.Director, b.Director); c != 0 {
			return c, true
		}
		return strings.Compare(a.Title, b.Title), true
	case Comedy:
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c, true
		}
		return cmp.Compare(a.Year, b.Year), true
	}

	return 0, false
}

// Less a sorts before b. Always false across genres.
func (a *Item) Less(b *Item) bool {
	c, ok := a.Compare(b)
	return ok && c < 0
}

// Greater a sorts after b. Always false across genres.
func (a *Item) Greater(b *Item) bool {
	c, ok := a.Compare(b)
	return ok && c > 0
}

// Equals a and b identify the same title under their genre rule. Stock and
// the fields the rule ignores play no part.
func (a *Item) Equals(b *Item) bool {
	if a == nil || b == nil || a.Category != b.Category {
		return false
	}

	switch a.Category {
	case Classic:
		return a.Actor == b.Actor && a.Month == b.Month && a.Year == b.Year
	case Drama:
		return a.Title == b.Title && a.Director == b.Director
	case Comedy:
		return a.Title == b.Title && a.Year == b.Year
	}

	return false
}

// Borrow takes one copy out of stock. Once stock has gone negative the item
// is reported out of stock and left untouched, so a borrow at zero still
// goes through and leaves -1.
func (a *Item) Borrow() error {
	if a.Stock < 0 {
		return ErrOutOfStock
	}

	a.Stock--
	return nil
}

// Return puts one copy back
func (a *Item) Return() {
	a.Stock++
}

// Render writes the one line listing of the item
func (a *Item) Render(w io.Writer) {
	if a.Stock < 0 {
		fmt.Fprintf(w, "Error: %s.\n", ErrOutOfStock)
		return
	}

	if a.Category == Classic {
		fmt.Fprintf(w, "%-8s%-8d%-25s%-35s%-20s%-8d%d\n",
			a.Category, a.Stock, a.Director, a.Title, a.Actor, a.Month, a.Year)
		return
	}

	fmt.Fprintf(w, "%-3s %-4d %-20s %-40s %-4d\n",
		a.Category, a.Stock, a.Director, a.Title, a.Year)
}

func (a *Item) String() string {
	var sb strings.Builder
	a.Render(&sb)
	return strings.TrimRight(sb.String(), "\n")
}
