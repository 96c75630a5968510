package item

import "github.com/pkg/errors"

// NewClassic builds a classic title
func NewClassic(stock int, director, title, actor string, month, year int) *Item {
	return &Item{Category: Classic, Stock: stock, Director: director, Title: title, Actor: actor, Month: month, Year: year}
}

// NewDrama builds a drama title
func NewDrama(stock int, director, title string, year int) *Item {
	return &Item{Category: Drama, Stock: stock, Director: director, Title: title, Year: year}
}

// NewComedy builds a comedy title
func NewComedy(stock int, director, title string, year int) *Item {
	return &Item{Category: Comedy, Stock: stock, Director: director, Title: title, Year: year}
}

// New builds an item of the given genre. Actor and month are ignored for
// anything but classics.
func New(c Category, stock int, director, title, actor string, month, year int) (*Item, error) {
	switch c {
	case Classic:
		return NewClassic(stock, director, title, actor, month, year), nil
	case Drama:
		return NewDrama(stock, director, title, year), nil
	case Comedy:
		return NewComedy(stock, director, title, year), nil
	}

	return nil, errors.Wrapf(ErrUnknownCategory, "code %q", c)
}

// ClassicKey search key for a classic, by release date and major actor
func ClassicKey(month, year int, actor string) *Item {
	return &Item{Category: Classic, Actor: actor, Month: month, Year: year}
}

// DramaKey search key for a drama, by director and title
func DramaKey(director, title string) *Item {
	return &Item{Category: Drama, Director: director, Title: title}
}

// ComedyKey search key for a comedy, by title and year
func ComedyKey(title string, year int) *Item {
	return &Item{Category: Comedy, Title: title, Year: year}
}
