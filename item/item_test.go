package item

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		code     string
		expected Category
		valid    bool
	}{
		{"C", Classic, true},
		{"D", Drama, true},
		{"F", Comedy, true},
		{" F ", Comedy, true},
		{"Z", 0, false},
		{"", 0, false},
		{"CD", 0, false},
	}

	for _, tt := range testCases {
		c, err := ParseCategory(tt.code)
		if !tt.valid {
			assert.True(t, errors.Is(err, ErrUnknownCategory), tt.code)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.expected, c)
	}
}

func TestClassicOrdering(t *testing.T) {
	testCases := []struct {
		a, b *Item
		less bool
	}{
		{ClassicKey(5, 1940, "Zed"), ClassicKey(1, 1941, "Abe"), true},
		{ClassicKey(2, 1940, "Zed"), ClassicKey(3, 1940, "Abe"), true},
		{ClassicKey(3, 1940, "Abe"), ClassicKey(3, 1940, "Bob"), true},
		{ClassicKey(4, 1940, "Abe"), ClassicKey(3, 1940, "Bob"), false},
		{ClassicKey(3, 1941, "Abe"), ClassicKey(3, 1940, "Bob"), false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.less, tt.a.Less(tt.b), "%v < %v", tt.a, tt.b)
		assert.Equal(t, tt.less, tt.b.Greater(tt.a), "%v > %v", tt.b, tt.a)
		assert.False(t, tt.a.Equals(tt.b))
	}
}

func TestDramaOrdering(t *testing.T) {
	testCases := []struct {
		a, b *Item
		less bool
	}{
		{DramaKey("Barry Levinson", "Zzz"), DramaKey("Clint Eastwood", "Aaa"), true},
		{DramaKey("Barry Levinson", "Good Morning Vietnam"), DramaKey("Barry Levinson", "Rain Man"), true},
		{DramaKey("Clint Eastwood", "Aaa"), DramaKey("Barry Levinson", "Zzz"), false},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.less, tt.a.Less(tt.b))
		assert.Equal(t, !tt.less, tt.a.Greater(tt.b))
	}
}

func TestComedyOrdering(t *testing.T) {
	alpha := NewComedy(2, "", "Alpha", 1990)
	beta := NewComedy(5, "", "Beta", 1985)
	alphaOld := NewComedy(1, "", "Alpha", 1980)

	assert.True(t, alpha.Less(beta))
	assert.True(t, beta.Greater(alpha))
	assert.True(t, alphaOld.Less(alpha))
	assert.False(t, alpha.Less(alphaOld))
}

func TestEqualsIgnoresStockAndUnusedFields(t *testing.T) {
	stored := NewClassic(10, "George Cukor", "Holiday", "Katherine Hepburn", 9, 1938)
	assert.True(t, stored.Equals(ClassicKey(9, 1938, "Katherine Hepburn")))
	assert.True(t, ClassicKey(9, 1938, "Katherine Hepburn").Equals(stored))
	assert.False(t, stored.Less(ClassicKey(9, 1938, "Katherine Hepburn")))
	assert.False(t, stored.Greater(ClassicKey(9, 1938, "Katherine Hepburn")))

	drama := NewDrama(3, "Steven Spielberg", "Schindler's List", 1993)
	assert.True(t, drama.Equals(DramaKey("Steven Spielberg", "Schindler's List")))

	comedy := NewComedy(3, "Nora Ephron", "You've Got Mail", 1998)
	assert.True(t, comedy.Equals(ComedyKey("You've Got Mail", 1998)))
	assert.False(t, comedy.Equals(ComedyKey("You've Got Mail", 1999)))
}

func TestCrossCategoryComparisonsAreFalse(t *testing.T) {
	drama := NewDrama(1, "Nora Ephron", "You've Got Mail", 1998)
	comedy := NewComedy(1, "Nora Ephron", "You've Got Mail", 1998)

	assert.False(t, drama.Less(comedy))
	assert.False(t, drama.Greater(comedy))
	assert.False(t, drama.Equals(comedy))
	assert.False(t, comedy.Less(drama))
	assert.False(t, comedy.Greater(drama))
	assert.False(t, comedy.Equals(drama))
	assert.False(t, comedy.Equals(nil))
}

func TestBorrowThreshold(t *testing.T) {
	i := NewComedy(1, "", "Alpha", 1990)

	assert.NoError(t, i.Borrow())
	assert.Equal(t, 0, i.Stock)

	// borrowing at zero is allowed and goes negative
	assert.NoError(t, i.Borrow())
	assert.Equal(t, -1, i.Stock)

	err := i.Borrow()
	assert.True(t, errors.Is(err, ErrOutOfStock))
	assert.Equal(t, -1, i.Stock)

	i.Return()
	i.Return()
	assert.Equal(t, 1, i.Stock)
}

func TestRender(t *testing.T) {
	testCases := []struct {
		item     *Item
		expected string
	}{
		{
			NewComedy(10, "Nora Ephron", "You've Got Mail", 1998),
			"F   10   Nora Ephron          You've Got Mail                          1998\n",
		},
		{
			NewClassic(10, "George Cukor", "Holiday", "Katherine Hepburn", 9, 1938),
			"C       10      George Cukor             Holiday                            Katherine Hepburn   9       1938\n",
		},
		{
			NewDrama(-1, "Steven Spielberg", "Schindler's List", 1993),
			"Error: this Movie is out of stock.\n",
		},
	}

	for _, tt := range testCases {
		var buf bytes.Buffer
		tt.item.Render(&buf)
		assert.Equal(t, tt.expected, buf.String())
	}
}

func TestNew(t *testing.T) {
	i, err := New(Classic, 4, "Michael Curtiz", "Casablanca", "Humphrey Bogart", 8, 1942)
	require.NoError(t, err)
	assert.Equal(t, "Humphrey Bogart", i.Actor)

	i, err = New(Drama, 4, "Barry Levinson", "Rain Man", "ignored", 8, 1988)
	require.NoError(t, err)
	assert.Empty(t, i.Actor)
	assert.Zero(t, i.Month)

	_, err = New(Category('X'), 1, "", "", "", 0, 0)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}
