package tree

// nilIndex is the index of the sentinel slot. A link with value nilIndex
// points nowhere.
const nilIndex uint32 = 0

// slot is the storage unit of a node.
type slot[T any] struct {
	value    T
	parent   uint32
	children [2]uint32 // indexed by Side
	gen      uint32    // incremented on every release
	seq      uint64    // creation stamp, monotonic per arena
	live     bool
}

// arena stores the nodes of a tree and of all subtrees detached from it.
//
// slots[0] is the sentinel and is never live. Released slots are chained into
// a free list through children[Left].
type arena[T any] struct {
	slots []slot[T]
	free  uint32
	seq   uint64
}

// handle references a slot. It is valid as long as the slot is live and its
// generation is unchanged.
type handle struct {
	idx uint32
	gen uint32
}

func newArena[T any]() *arena[T] {
	return &arena[T]{slots: make([]slot[T], 1, 16)}
}

func (a *arena[T]) alloc(value T) uint32 {
	a.seq++
	var i uint32
	if a.free != nilIndex {
		i = a.free
		a.free = a.slots[i].children[Left]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.value = value
	s.parent = nilIndex
	s.children = [2]uint32{nilIndex, nilIndex}
	s.seq = a.seq
	s.live = true
	return i
}

// release returns a single slot to the free list. Links of neighbouring slots
// are not touched.
func (a *arena[T]) release(i uint32) {
	assert(i != nilIndex, "release of sentinel slot")
	s := &a.slots[i]
	var zero T
	s.value = zero
	s.parent = nilIndex
	s.children = [2]uint32{a.free, nilIndex}
	s.gen++
	s.live = false
	a.free = i
}

// releaseSubtree releases all slots of the subtree rooted at i.
func (a *arena[T]) releaseSubtree(i uint32) {
	if i == nilIndex {
		return
	}
	stack := []uint32{i}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range a.slots[n].children {
			if c != nilIndex {
				stack = append(stack, c)
			}
		}
		a.release(n)
	}
}

func (a *arena[T]) handleOf(i uint32) handle {
	if i == nilIndex {
		return handle{}
	}
	return handle{idx: i, gen: a.slots[i].gen}
}

func (a *arena[T]) valid(h handle) bool {
	if a == nil || h.idx == nilIndex || int(h.idx) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.idx]
	return s.live && s.gen == h.gen
}

func (a *arena[T]) parent(i uint32) uint32 {
	return a.slots[i].parent
}

func (a *arena[T]) child(i uint32, s Side) uint32 {
	return a.slots[i].children[s]
}

// sideOf returns the side at which i hangs below its parent. i must not be a
// root.
func (a *arena[T]) sideOf(i uint32) Side {
	p := a.slots[i].parent
	assert(p != nilIndex, "sideOf called for root slot")
	if a.slots[p].children[Left] == i {
		return Left
	}
	assert(a.slots[p].children[Right] == i, "parent does not link back to child")
	return Right
}

// topOf walks up the parent chain and returns the topmost ancestor of i.
func (a *arena[T]) topOf(i uint32) uint32 {
	for a.slots[i].parent != nilIndex {
		i = a.slots[i].parent
	}
	return i
}

// count returns the number of nodes in the subtree rooted at i.
func (a *arena[T]) count(i uint32) int {
	if i == nilIndex {
		return 0
	}
	n := 0
	stack := []uint32{i}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, c := range a.slots[x].children {
			if c != nilIndex {
				stack = append(stack, c)
			}
		}
	}
	return n
}
