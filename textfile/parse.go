package textfile

import (
	"strconv"
	"strings"

	"github.com/eirikbell/rental/customer"
	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/transaction"
	"github.com/pkg/errors"
)

// ErrMalformed line does not have the fields its record needs
var ErrMalformed = errors.New("malformed line")

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for n := range parts {
		parts[n] = strings.TrimSpace(parts[n])
	}
	return parts
}

// splitHead cuts the first n whitespace separated tokens off line and
// returns them with the untouched remainder
func splitHead(line string, n int) ([]string, string) {
	head := make([]string, 0, n)
	rest := strings.TrimSpace(line)
	for len(head) < n && rest != "" {
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			head = append(head, rest)
			rest = ""
			break
		}
		head = append(head, rest[:end])
		rest = strings.TrimSpace(rest[end:])
	}
	return head, rest
}

// ParseItem reads one movie line:
//
//	F, 10, Nora Ephron, You've Got Mail, 1998
//	D, 10, Steven Spielberg, Schindler's List, 1993
//	C, 10, George Cukor, Holiday, Katherine Hepburn 9 1938
func ParseItem(line string) (*item.Item, error) {
	parts := splitCSV(line)
	if len(parts) < 5 {
		return nil, errors.Wrapf(ErrMalformed, "movie %q", line)
	}

	genre, err := item.ParseCategory(parts[0])
	if err != nil {
		return nil, err
	}

	stock, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "stock %q", parts[1])
	}

	director, title := parts[2], parts[3]
	details := strings.Join(parts[4:], ",")

	if genre != item.Classic {
		year, err := strconv.Atoi(details)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "year %q", details)
		}
		return item.New(genre, stock, director, title, "", 0, year)
	}

	fields := strings.Fields(details)
	if len(fields) < 3 {
		return nil, errors.Wrapf(ErrMalformed, "classic details %q", details)
	}

	month, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "month %q", fields[len(fields)-2])
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "year %q", fields[len(fields)-1])
	}
	actor := strings.Join(fields[:len(fields)-2], " ")

	return item.NewClassic(stock, director, title, actor, month, year), nil
}

// ParseCustomer reads one customer line: id, then the two name fields
func ParseCustomer(line string) (*customer.Customer, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, errors.Wrapf(ErrMalformed, "customer %q", line)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "customer id %q", fields[0])
	}

	return customer.New(id, fields[1], fields[2]), nil
}

// ParseTransaction reads one command line:
//
//	I
//	H 1234
//	B 1234 D C 9 1938 Ingrid Bergman
//	B 1234 D F Pirates of the Caribbean, 2003
//	R 1234 D D Steven Spielberg, Schindler's List,
func ParseTransaction(line string) (transaction.Transaction, error) {
	head, rest := splitHead(line, 4)
	if len(head) == 0 {
		return nil, errors.Wrapf(ErrMalformed, "command %q", line)
	}

	kind, err := transaction.ParseKind(head[0])
	if err != nil {
		return nil, err
	}

	if kind == transaction.KindInventory {
		return transaction.NewInventory(), nil
	}

	if len(head) < 2 {
		return nil, errors.Wrapf(ErrMalformed, "command %q", line)
	}
	id, err := strconv.Atoi(head[1])
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "customer id %q", head[1])
	}

	if kind == transaction.KindHistory {
		return transaction.NewHistory(id), nil
	}

	if len(head) < 4 || len(head[2]) != 1 {
		return nil, errors.Wrapf(ErrMalformed, "command %q", line)
	}
	media := head[2][0]

	genre, err := item.ParseCategory(head[3])
	if err != nil {
		return nil, err
	}

	var attr1, attr2 string
	switch genre {
	case item.Classic:
		fields := strings.Fields(rest)
		if len(fields) < 3 {
			return nil, errors.Wrapf(ErrMalformed, "command %q", line)
		}
		attr1 = fields[0] + " " + fields[1]
		attr2 = strings.Join(fields[2:], " ")
	default:
		parts := splitCSV(rest)
		if len(parts) < 2 {
			return nil, errors.Wrapf(ErrMalformed, "command %q", line)
		}
		attr1, attr2 = parts[0], parts[1]
	}

	return transaction.New(kind, id, media, genre, attr1, attr2)
}
