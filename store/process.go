package store

import (
	"fmt"

	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/transaction"
	"github.com/eirikbell/rental/tree"
	"github.com/pkg/errors"
)

func (s *Store) report(tx transaction.Transaction, err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)

	if tx == nil {
		s.log.Debug("transaction failed", "err", err)
		return
	}
	s.log.Debug("transaction failed",
		"id", tx.ID(),
		"kind", tx.Kind().String(),
		"category", tx.Category().String(),
		"customer", tx.CustomerID(),
		"err", err)
}

// route picks the indexes tx runs against. History needs none of them and
// gets a throwaway empty index.
func (s *Store) route(tx transaction.Transaction) ([]*tree.Index, error) {
	switch tx.Kind() {
	case transaction.KindBorrow, transaction.KindReturn:
		idx, ok := s.indexes[tx.Category()]
		if !ok {
			return nil, errors.Wrapf(item.ErrUnknownCategory, "code %q", tx.Category())
		}
		return []*tree.Index{idx}, nil
	case transaction.KindHistory:
		return []*tree.Index{tree.New()}, nil
	case transaction.KindInventory:
		out := make([]*tree.Index, 0, len(s.inventory))
		for _, c := range s.inventory {
			if idx, ok := s.indexes[c]; ok {
				out = append(out, idx)
			}
		}
		return out, nil
	}

	return nil, errors.Wrapf(transaction.ErrUnknownKind, "code %q", tx.Kind())
}

// Process runs every pending transaction once, in the order they were
// enqueued. Failures are reported and the run moves on to the next one.
func (s *Store) Process() Summary {
	var sum Summary

	pending := s.transactions
	s.transactions = nil

	for _, tx := range pending {
		if tx == nil {
			s.report(nil, errors.WithStack(ErrNilRecord))
			sum.Skipped++
			continue
		}

		indexes, err := s.route(tx)
		if err != nil {
			s.report(tx, err)
			sum.Skipped++
			continue
		}

		failed := false
		for _, idx := range indexes {
			if err := tx.Execute(idx, s.customers, s.out); err != nil {
				s.report(tx, err)
				failed = true
			}
		}

		if failed {
			sum.Failed++
			continue
		}
		sum.Executed++
		s.log.Debug("transaction executed",
			"id", tx.ID(),
			"kind", tx.Kind().String(),
			"customer", tx.CustomerID())
	}

	s.log.Info("transactions processed",
		"executed", sum.Executed,
		"failed", sum.Failed,
		"skipped", sum.Skipped)

	return sum
}
