package listview

import (
	"strings"
	"testing"
)

func TestApplyPreservesOrder(t *testing.T) {
	items := []string{"alpha", "bravo", "charlie", "delta", "echo"}

	got := Apply(items, func(s string) bool { return strings.Contains(s, "a") })

	want := []string{"alpha", "bravo", "charlie", "delta"}
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestApplyIsSubset(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}
	got := Apply(items, func(n int) bool { return n > 2 })

	set := map[int]bool{}
	for _, n := range items {
		set[n] = true
	}
	for _, n := range got {
		if !set[n] {
			t.Errorf("filtered result contains %d, not in the input collection", n)
		}
	}
}

func TestApplyCombinesWithAND(t *testing.T) {
	items := []string{"go tutorial", "go news", "rust news", "design"}

	got := Apply(items,
		func(s string) bool { return strings.Contains(s, "go") },
		func(s string) bool { return strings.Contains(s, "news") },
	)

	if len(got) != 1 || got[0] != "go news" {
		t.Errorf("AND filter = %v, want [go news]", got)
	}
}

func TestApplyNoPredicates(t *testing.T) {
	items := []int{1, 2, 3}
	if got := Apply(items); len(got) != 3 {
		t.Errorf("no predicates should pass everything, got %v", got)
	}
}

func TestTextMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"anything"}, true},
		{"whitespace query matches", "   ", []string{"anything"}, true},
		{"case-insensitive title match", "DESIGN", []string{"Design Resources"}, true},
		{"substring in second field", "interview", []string{"The Journal", "industry interviews"}, true},
		{"no match", "rust", []string{"Go Tutorial", "golang"}, false},
		{"no fields", "query", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextMatch(tt.query, tt.fields...); got != tt.want {
				t.Errorf("TextMatch(%q, %v) = %v, want %v", tt.query, tt.fields, got, tt.want)
			}
		})
	}
}
