package tree

import (
	"io"

	"github.com/eirikbell/rental/item"
)

type node struct {
	item        *item.Item
	left, right *node
}

// Index unbalanced binary search tree over the items of one genre. Items are
// ordered by their own genre rule, so a tree must never mix genres.
type Index struct {
	root *node
	size int
}

// New empty index
func New() *Index {
	return &Index{}
}

// Insert adds i as a new leaf. Returns false, leaving the tree untouched,
// when i is nil or an equal item is already present.
func (t *Index) Insert(i *item.Item) bool {
	if i == nil {
		return false
	}

	if !insert(&t.root, i) {
		return false
	}

	t.size++
	return true
}

func insert(slot **node, i *item.Item) bool {
	current := *slot
	switch {
	case current == nil:
		*slot = &node{item: i}
		return true
	case i.Less(current.item):
		return insert(&current.left, i)
	case i.Greater(current.item):
		return insert(&current.right, i)
	default:
		return false
	}
}

// Retrieve finds the stored item equal to target. target only needs the
// fields its genre compares on.
func (t *Index) Retrieve(target *item.Item) (*item.Item, bool) {
	if target == nil {
		return nil, false
	}

	return find(t.root, target)
}

func find(current *node, target *item.Item) (*item.Item, bool) {
	for current != nil {
		if current.item.Equals(target) {
			return current.item, true
		}

		if target.Less(current.item) {
			current = current.left
		} else {
			current = current.right
		}
	}

	return nil, false
}

// Walk visits every item in ascending order, stopping early when fn returns
// false.
func (t *Index) Walk(fn func(*item.Item) bool) {
	walk(t.root, fn)
}

func walk(current *node, fn func(*item.Item) bool) bool {
	if current == nil {
		return true
	}

	return walk(current.left, fn) && fn(current.item) && walk(current.right, fn)
}

// Items in ascending order
func (t *Index) Items() []*item.Item {
	items := make([]*item.Item, 0, t.size)
	t.Walk(func(i *item.Item) bool {
		items = append(items, i)
		return true
	})
	return items
}

// Display renders every item in ascending order
func (t *Index) Display(w io.Writer) {
	t.Walk(func(i *item.Item) bool {
		i.Render(w)
		return true
	})
}

// Len number of items stored
func (t *Index) Len() int {
	return t.size
}

// Height number of nodes on the longest root to leaf path
func (t *Index) Height() int {
	return height(t.root)
}

func height(current *node) int {
	if current == nil {
		return 0
	}

	return 1 + max(height(current.left), height(current.right))
}

// Clear releases every node and item, children first. Safe on an empty index
// and safe to repeat.
func (t *Index) Clear() {
	release(&t.root)
	t.size = 0
}

func release(slot **node) {
	current := *slot
	if current == nil {
		return
	}

	release(&current.left)
	release(&current.right)
	current.item = nil
	*slot = nil
}
