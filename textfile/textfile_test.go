package textfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eirikbell/rental/item"
	"github.com/eirikbell/rental/transaction"
	"github.com/eirikbell/rental/tree"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItem(t *testing.T) {
	testCases := []struct {
		line     string
		expected *item.Item
	}{
		{"F, 10, Nora Ephron, You've Got Mail, 1998", item.NewComedy(10, "Nora Ephron", "You've Got Mail", 1998)},
		{"D, 10, Steven Spielberg, Schindler's List, 1993", item.NewDrama(10, "Steven Spielberg", "Schindler's List", 1993)},
		{"C, 10, George Cukor, Holiday, Katherine Hepburn 9 1938", item.NewClassic(10, "George Cukor", "Holiday", "Katherine Hepburn", 9, 1938)},
		{"C, 5, Victor Fleming, The Wizard of Oz, Judy Garland 7 1939", item.NewClassic(5, "Victor Fleming", "The Wizard of Oz", "Judy Garland", 7, 1939)},
	}

	for _, tt := range testCases {
		i, err := ParseItem(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.expected, i)
	}
}

func TestParseItemErrors(t *testing.T) {
	testCases := []struct {
		line string
		err  error
	}{
		{"Z, 10, Hal Ashby, Harold and Maude, 1971", item.ErrUnknownCategory},
		{"F, ten, Nora Ephron, You've Got Mail, 1998", ErrMalformed},
		{"F, 10, Nora Ephron, You've Got Mail", ErrMalformed},
		{"D, 10, Steven Spielberg, Schindler's List, soon", ErrMalformed},
		{"C, 10, George Cukor, Holiday, Katherine 1938", ErrMalformed},
		{"C, 10, George Cukor, Holiday, Katherine Hepburn Sep 1938", ErrMalformed},
	}

	for _, tt := range testCases {
		_, err := ParseItem(tt.line)
		assert.True(t, errors.Is(err, tt.err), "%s: %v", tt.line, err)
	}
}

func TestParseCustomer(t *testing.T) {
	c, err := ParseCustomer("3333 Witch Wicked")
	require.NoError(t, err)
	assert.Equal(t, 3333, c.ID)
	assert.Equal(t, "Witch", c.FirstName)
	assert.Equal(t, "Wicked", c.LastName)

	for _, line := range []string{"3333 Witch", "abc Witch Wicked"} {
		_, err := ParseCustomer(line)
		assert.True(t, errors.Is(err, ErrMalformed), line)
	}
}

func TestParseTransactionSearchKeys(t *testing.T) {
	testCases := []struct {
		line     string
		kind     transaction.Kind
		category item.Category
		key      *item.Item
	}{
		{"B 1234 D C 9 1938 Ingrid Bergman", transaction.KindBorrow, item.Classic, item.ClassicKey(9, 1938, "Ingrid Bergman")},
		{"B 1234 D F Pirates of the Caribbean, 2003", transaction.KindBorrow, item.Comedy, item.ComedyKey("Pirates of the Caribbean", 2003)},
		{"R 1234 D D Steven Spielberg, Schindler's List,", transaction.KindReturn, item.Drama, item.DramaKey("Steven Spielberg", "Schindler's List")},
	}

	for _, tt := range testCases {
		tx, err := ParseTransaction(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.kind, tx.Kind())
		assert.Equal(t, tt.category, tx.Category())
		assert.Equal(t, 1234, tx.CustomerID())

		keyed, ok := tx.(interface{ SearchKey() (*item.Item, error) })
		require.True(t, ok)
		key, err := keyed.SearchKey()
		require.NoError(t, err)
		assert.True(t, key.Equals(tt.key), "%s: %v", tt.line, key)

		idx := tree.New()
		idx.Insert(tt.key)
		_, ok = idx.Retrieve(key)
		assert.True(t, ok)
	}
}

func TestParseTransactionOthers(t *testing.T) {
	tx, err := ParseTransaction("I")
	require.NoError(t, err)
	assert.Equal(t, transaction.KindInventory, tx.Kind())

	tx, err = ParseTransaction("H 5000")
	require.NoError(t, err)
	assert.Equal(t, transaction.KindHistory, tx.Kind())
	assert.Equal(t, 5000, tx.CustomerID())

	testCases := []struct {
		line string
		err  error
	}{
		{"X 1234 Z C 9 1938 Bette Davis", transaction.ErrUnknownKind},
		{"B 1234 D Z Harold and Maude, 1971", item.ErrUnknownCategory},
		{"H", ErrMalformed},
		{"H abc", ErrMalformed},
		{"B 1234 D", ErrMalformed},
		{"B 1234 D C 9 1938", ErrMalformed},
		{"B 1234 D F Harold and Maude", ErrMalformed},
	}

	for _, tt := range testCases {
		_, err := ParseTransaction(tt.line)
		assert.True(t, errors.Is(err, tt.err), "%s: %v", tt.line, err)
	}
}

func write(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFilesLoad(t *testing.T) {
	dir := t.TempDir()
	f := Files{
		Items: write(t, dir, "movies.txt", "F, 10, Nora Ephron, You've Got Mail, 1998\n"+
			"Z, 10, Hal Ashby, Harold and Maude, 1971\n\n"+
			"C, 10, George Cukor, Holiday, Katherine Hepburn 9 1938\n"),
		Customers: write(t, dir, "customers.txt", "3333 Witch Wicked\n8888 Pig Porky\n"),
		Commands: write(t, dir, "commands.txt", "I\n"+
			"B 3333 D F You've Got Mail, 1998\n"+
			"X 3333\n"+
			"H 3333\n"),
	}

	catalog, err := f.Load()
	require.NoError(t, err)

	assert.Len(t, catalog.Items, 2)
	assert.Len(t, catalog.Customers, 2)
	require.Len(t, catalog.Transactions, 3)
	assert.Equal(t, transaction.KindInventory, catalog.Transactions[0].Kind())
	assert.Equal(t, transaction.KindBorrow, catalog.Transactions[1].Kind())
	assert.Equal(t, transaction.KindHistory, catalog.Transactions[2].Kind())

	require.Len(t, catalog.Rejected, 2)
	assert.Contains(t, catalog.Rejected[0].Error(), "movies.txt:2")
	assert.Contains(t, catalog.Rejected[1].Error(), "commands.txt:3")
}

func TestFilesLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	f := Files{
		Items:     write(t, dir, "movies.txt", ""),
		Customers: filepath.Join(dir, "nope.txt"),
		Commands:  write(t, dir, "commands.txt", ""),
	}

	catalog, err := f.Load()
	assert.Nil(t, catalog)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
