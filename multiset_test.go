package arbor

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestMultisetBasics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := NewMultiset[int]()
	if _, ok := m.Min(); ok {
		t.Fatalf("empty multiset has a minimum")
	}
	for _, v := range []int{5, 3, 8, 3, 1, 5, 5} {
		m.Add(v)
	}
	if m.Len() != 7 {
		t.Fatalf("expected 7 values, have %d", m.Len())
	}
	if s := m.String(); s != "{1 3 3 5 5 5 8}" {
		t.Errorf("unexpected multiset %s", s)
	}
	if c := m.Count(5); c != 3 {
		t.Errorf("expected 3 occurrences of 5, have %d", c)
	}
	if m.Contains(4) || !m.Contains(8) {
		t.Errorf("containment of 4 or 8 reported wrong")
	}
	if lo, _ := m.Min(); lo != 1 {
		t.Errorf("expected minimum 1, have %d", lo)
	}
	if hi, _ := m.Max(); hi != 8 {
		t.Errorf("expected maximum 8, have %d", hi)
	}
	if got := slices.Collect(m.Backward()); !slices.Equal(got, []int{8, 5, 5, 5, 3, 3, 1}) {
		t.Errorf("unexpected backward sequence %v", got)
	}
	if err := m.Tree().Check(); err != nil {
		t.Fatal(err)
	}
}

func TestMultisetRemove(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := NewMultiset[string]()
	m.AddAll(slices.Values([]string{"b", "a", "b", "c", "b"}))
	if !m.Remove("b") || m.Count("b") != 2 {
		t.Fatalf("expected one b to be removed, have %s", m)
	}
	if m.Remove("x") {
		t.Errorf("removed value which is not contained")
	}
	if n := m.RemoveAll("b"); n != 2 {
		t.Errorf("expected to remove 2 b's, removed %d", n)
	}
	if s := m.String(); s != "{a c}" {
		t.Errorf("unexpected multiset %s", s)
	}
	if err := m.Tree().Check(); err != nil {
		t.Fatal(err)
	}
	m.Clear()
	if m.Len() != 0 || m.String() != "{}" {
		t.Errorf("clear left %s", m)
	}
}

type entry struct {
	key  int
	name string
}

func TestMultisetKeepsInsertionOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	byKey := order.By(func(e entry) int { return e.key }, order.Natural[int]())
	hash := func(e entry) uint64 { return order.HashString(e.name) }
	m, err := NewMultisetFunc(byKey, hash)
	if err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"d", "x", "a", "y", "b", "c", "z"} {
		key := 1
		if i%2 == 1 {
			key = 2
		}
		m.Add(entry{key: key, name: name})
	}
	var names []string
	for e := range m.All() {
		names = append(names, e.name)
	}
	if got := strings.Join(names, ""); got != "dabcxyz" {
		t.Errorf("expected equal keys in insertion order, have %s", got)
	}
	if !m.Remove(entry{key: 2}) {
		t.Fatalf("no entry with key 2 removed")
	}
	if e, _ := m.Max(); e.name != "z" {
		t.Errorf("expected oldest entry to be removed, max is %s", e.name)
	}
	if c := m.Count(entry{key: 2}); c != 2 {
		t.Errorf("expected 2 entries with key 2, have %d", c)
	}
}

func TestMultisetRequiresOrdering(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	_, err := NewMultisetFunc[entry](nil, nil)
	if !errors.Is(err, order.ErrNoNaturalOrder) || !errors.Is(err, tree.ErrInvalidConfig) {
		t.Fatalf("expected missing ordering to be reported, have %v", err)
	}
	m, err := NewMultisetFunc[float64](nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Add(2.5)
	m.Add(-1)
	if s := m.String(); s != "{-1 2.5}" {
		t.Errorf("unexpected multiset %s", s)
	}
}

func TestMultisetBetween(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := NewMultiset[int]()
	for i := range 20 {
		m.Add(i % 10)
	}
	got := slices.Collect(m.Between(3, 6))
	if !slices.Equal(got, []int{3, 3, 4, 4, 5, 5}) {
		t.Errorf("unexpected range %v", got)
	}
	if got := slices.Collect(m.Between(20, 30)); len(got) != 0 {
		t.Errorf("expected empty range, have %v", got)
	}
}

func TestMultisetBalanced(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := NewMultiset[int]()
	for i := range 2048 {
		m.Add(i)
	}
	height := 0
	for n := range m.Tree().Range() {
		height = max(height, n.Depth())
	}
	if height > 64 {
		t.Errorf("multiset of sorted input degenerated to height %d", height)
	}
}

func TestMultisetPrint(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := NewMultiset[int]()
	var sb strings.Builder
	if err := m.Print(&sb, nil); err != nil || sb.Len() != 0 {
		t.Fatalf("expected empty multiset to print nothing, have %q (%v)", sb.String(), err)
	}
	m.Add(7)
	m.Add(3)
	if err := m.Print(&sb, nil); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "7") || !strings.Contains(out, "3") || strings.Count(out, "\n") != 2 {
		t.Errorf("unexpected drawing %q", out)
	}
}
