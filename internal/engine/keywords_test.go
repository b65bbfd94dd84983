package engine

import "testing"

func TestSet_AdjustClamps(t *testing.T) {
	s := NewSet()

	s.adjust("word", 1, true)
	if w, _ := s.Get("word"); w != 1 {
		t.Errorf("expected 1, got %d", w)
	}

	s.adjust("word", 100, false)
	if w, _ := s.Get("word"); w != MaxWeight {
		t.Errorf("expected %d, got %d", MaxWeight, w)
	}

	s.adjust("word", -100, false)
	if w, _ := s.Get("word"); w != MinWeight {
		t.Errorf("expected %d, got %d", MinWeight, w)
	}
}

func TestSet_AdjustInsertRules(t *testing.T) {
	s := NewSet()

	if s.adjust("missing", 1, false) {
		t.Error("expected false without insert")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty set, got %d entries", s.Len())
	}

	// Negative delta on insert lands at the lower bound.
	if !s.adjust("penalized", -1, true) {
		t.Error("expected insert to succeed")
	}
	if w, _ := s.Get("penalized"); w != MinWeight {
		t.Errorf("expected %d, got %d", MinWeight, w)
	}
}

func TestSet_FirstStoredCasingWins(t *testing.T) {
	s := NewSet()
	s.adjust("Keyword", 1, true)
	s.adjust("KEYWORD", 1, true)
	s.adjust("keyword", 1, true)

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
	sorted := s.Sorted()
	if sorted[0].Word != "Keyword" {
		t.Errorf("expected first-stored casing %q, got %q", "Keyword", sorted[0].Word)
	}
	if sorted[0].Weight != 3 {
		t.Errorf("expected weight 3, got %d", sorted[0].Weight)
	}
}

func TestSet_SortedOrder(t *testing.T) {
	s := NewSet()
	s.put("bravo", 2)
	s.put("delta", 5)
	s.put("Alpha", 2)
	s.put("charlie", 2)

	got := s.Sorted()
	want := []string{"delta", "Alpha", "bravo", "charlie"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Word != w {
			t.Errorf("position %d: expected %q, got %q", i, w, got[i].Word)
		}
	}
}

func TestSet_MergeKeepsHigherWeight(t *testing.T) {
	global := NewSet()
	global.put("stable", 5)
	global.put("rising", 2)

	local := NewSet()
	local.put("stable", 3)
	local.put("rising", 7)
	local.put("fresh", 1)

	global.merge(local)

	if w, _ := global.Get("stable"); w != 5 {
		t.Errorf("stable: expected 5, got %d", w)
	}
	if w, _ := global.Get("rising"); w != 7 {
		t.Errorf("rising: expected 7, got %d", w)
	}
	if w, ok := global.Get("fresh"); !ok || w != 1 {
		t.Errorf("fresh: expected 1, got %d (known=%v)", w, ok)
	}
}

func TestClampWeight(t *testing.T) {
	cases := []struct {
		in   int64
		want Weight
	}{
		{-5, MinWeight},
		{0, MinWeight},
		{1, 1},
		{20, 20},
		{21, MaxWeight},
		{1000, MaxWeight},
	}
	for _, c := range cases {
		if got := clampWeight(c.in); got != c.want {
			t.Errorf("clampWeight(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
