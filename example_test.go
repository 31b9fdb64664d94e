package arbor_test

import (
	"fmt"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/ptree"
	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/arbor/treefmt"
)

func ExampleMultiset() {
	m := arbor.NewMultiset[string]()
	m.Add("b")
	m.Add("a")
	m.Add("b")
	fmt.Println(m, m.Count("b"))
	// Output: {a b b} 2
}

func ExampleMultiset_Between() {
	m := arbor.NewMultiset[int]()
	for _, v := range []int{9, 2, 7, 4, 4, 1} {
		m.Add(v)
	}
	for v := range m.Between(2, 8) {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 2 4 4 7
}

func Example_tree() {
	t := tree.NewWithRoot("root")
	r := t.RootMutator()
	l, _ := r.InsertChild(tree.Left, "left")
	_, _ = r.InsertChild(tree.Right, "right")
	_, _ = l.InsertChild(tree.Right, "inner")
	fmt.Print(treefmt.Sprint(t.Root().Virtual(), &treefmt.Config{}))
	// Output:
	// root
	// ┝━━left
	// │  └──inner
	// └──right
}

func Example_stableHeap() {
	type task struct {
		prio int
		name string
	}
	byPrio := func(a, b task) bool { return a.prio > b.prio }
	byName := order.By(func(t task) string { return t.name }, order.Natural[string]())
	q, _ := ptree.New(ptree.Config[task]{Left: byName, Tall: byPrio})
	for _, tk := range []task{{1, "write"}, {3, "plan"}, {1, "test"}, {3, "design"}} {
		_, _ = ptree.StableHeapPush(q, tk)
	}
	for tk := range ptree.Drain(q) {
		fmt.Print(tk.name, " ")
	}
	fmt.Println()
	// Output: plan design write test
}
