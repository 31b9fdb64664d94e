package tree

// Side selects one of the two child slots of a node. It is also used to
// describe the preferred direction of a traversal (the wing).
//
// The values are used as indices into the child slots.
type Side uint8

const (
	Left  Side = 0
	Right Side = 1
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	return s ^ 1
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Order is a traversal order.
type Order uint8

const (
	PreOrder  Order = iota // node, then subtrees
	InOrder                // first subtree, node, second subtree
	PostOrder              // subtrees, then node
)

// Complement returns the order which, combined with the opposite wing,
// visits nodes in reverse sequence:
//
//	~pre == post, ~in == in, ~post == pre
func (o Order) Complement() Order {
	switch o {
	case PreOrder:
		return PostOrder
	case PostOrder:
		return PreOrder
	}
	return InOrder
}

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return "invalid-order"
}
