package textfile

import (
	"bufio"
	"os"
	"strings"

	"github.com/eirikbell/rental/servicelib"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Files the three input files of a store
type Files struct {
	Items     string
	Customers string
	Commands  string
}

var _ servicelib.Source = Files{}

type numbered struct {
	n    int
	text string
}

func readLines(path string) ([]numbered, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Error opening %s", path)
	}
	defer f.Close()

	var lines []numbered
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, numbered{n: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "Error reading %s", path)
	}

	return lines, nil
}

// Load reads the three files side by side and parses them in file order.
// Lines that do not parse end up in Catalog.Rejected; a file that cannot be
// read fails the whole load.
func (f Files) Load() (*servicelib.Catalog, error) {
	var items, customers, commands []numbered

	var g errgroup.Group
	g.Go(func() (err error) {
		items, err = readLines(f.Items)
		return err
	})
	g.Go(func() (err error) {
		customers, err = readLines(f.Customers)
		return err
	})
	g.Go(func() (err error) {
		commands, err = readLines(f.Commands)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := &servicelib.Catalog{}
	reject := func(path string, l numbered, err error) {
		catalog.Rejected = append(catalog.Rejected, errors.Wrapf(err, "%s:%d", path, l.n))
	}

	for _, l := range items {
		i, err := ParseItem(l.text)
		if err != nil {
			reject(f.Items, l, err)
			continue
		}
		catalog.Items = append(catalog.Items, i)
	}

	for _, l := range customers {
		c, err := ParseCustomer(l.text)
		if err != nil {
			reject(f.Customers, l, err)
			continue
		}
		catalog.Customers = append(catalog.Customers, c)
	}

	for _, l := range commands {
		tx, err := ParseTransaction(l.text)
		if err != nil {
			reject(f.Commands, l, err)
			continue
		}
		catalog.Transactions = append(catalog.Transactions, tx)
	}

	return catalog, nil
}
