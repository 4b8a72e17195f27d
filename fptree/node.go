package fptree

import "github.com/gammazero/deque"

// node is a single position in the FP-tree. Every node except the
// distinguished root carries an item label, a parent backlink, a map of
// children keyed by label, a traversal count (how many inserted
// transactions passed through this position), a read count (how much of
// that traversal count has already been attributed to a conditional pattern
// base during the current mining pass), and a same-item sibling link that
// threads this node into its header chain.
type node[T comparable] struct {
	item     T
	isRoot   bool
	parent   *node[T]
	children map[T]*node[T]
	count    int // traversal-count
	read     int // read-count
	next     *node[T]
}

func newRootNode[T comparable]() *node[T] {
	return &node[T]{
		isRoot:   true,
		children: make(map[T]*node[T]),
	}
}

func newChildNode[T comparable](item T, parent *node[T]) *node[T] {
	return &node[T]{
		item:     item,
		parent:   parent,
		children: make(map[T]*node[T]),
		count:    1,
	}
}

// childPresent returns the existing child labeled item, if any.
func (n *node[T]) childPresent(item T) (*node[T], bool) {
	c, ok := n.children[item]
	return c, ok
}

// addChild inserts a new child labeled item. It fails if one already
// exists; callers must check childPresent first.
func (n *node[T]) addChild(item T) (*node[T], error) {
	if _, exists := n.children[item]; exists {
		return nil, ErrAccountingViolation
	}
	child := newChildNode(item, n)
	n.children[item] = child
	return child, nil
}

// incrementTraversal adds one to the traversal count, for a transaction
// re-using an existing child.
func (n *node[T]) incrementTraversal() {
	n.count++
}

// incrementRead adds by (zero or more) to the read count. It
// fails, without mutating state, if that would exceed the traversal count.
func (n *node[T]) incrementRead(by int) error {
	if n.read+by > n.count {
		return ErrAccountingViolation
	}
	n.read += by
	return nil
}

// adjustedCount is the portion of this node's traversal count not yet
// attributed to a conditional pattern base in the current mining pass.
func (n *node[T]) adjustedCount() int {
	return n.count - n.read
}

// resetReadChain walks the same-item sibling chain starting at head,
// iteratively (not recursively, per the large-N stack-depth concern noted
// for header chains), setting every node's read count back to zero.
func resetReadChain[T comparable](head *node[T]) {
	q := deque.New[*node[T]]()
	if head != nil {
		q.PushBack(head)
	}
	for q.Len() > 0 {
		n := q.PopFront()
		n.read = 0
		if n.next != nil {
			q.PushBack(n.next)
		}
	}
}

// prefixPath walks parent links from n up to (but not including) root,
// returning the ancestor item labels in the order encountered: n's parent
// first, working outward toward the root. n itself and the root are
// excluded.
//
// As a side effect, required by the FP-growth accounting scheme, it first
// computes n's own adjusted count c, adds c to n's own read count, and adds
// c to the read count of every ancestor strictly between n and root. This
// "spends" c transactions' worth of n's contribution so that later nodes on
// n's header chain don't double-count the shared ancestors. The walk is
// iterative to bound stack depth to O(1) regardless of tree depth.
func (n *node[T]) prefixPath() ([]T, int, error) {
	if n.isRoot {
		return nil, 0, ErrAccountingViolation
	}

	c := n.adjustedCount()
	if err := n.incrementRead(c); err != nil {
		return nil, 0, err
	}

	path := deque.New[T]()
	cur := n.parent
	for cur != nil && !cur.isRoot {
		if err := cur.incrementRead(c); err != nil {
			return nil, 0, err
		}
		path.PushBack(cur.item)
		cur = cur.parent
	}

	out := make([]T, path.Len())
	for i := range out {
		out[i] = path.At(i)
	}
	return out, c, nil
}
