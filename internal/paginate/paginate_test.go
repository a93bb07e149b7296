package paginate

import "testing"

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPageBoundaries(t *testing.T) {
	p := New[int](10)
	all := items(23)

	if got := p.TotalPages(len(all)); got != 3 {
		t.Errorf("TotalPages(23) = %d, want 3", got)
	}
	if got := p.Page(all, 1); len(got) != 10 || got[0] != 0 {
		t.Errorf("page 1 = %v", got)
	}
	if got := p.Page(all, 3); len(got) != 3 || got[0] != 20 {
		t.Errorf("page 3 = %v, want the last 3 items", got)
	}
	if got := p.Page(all, 4); len(got) != 0 {
		t.Errorf("page 4 = %v, want empty without error", got)
	}
}

func TestPageBelowOne(t *testing.T) {
	p := New[int](10)
	if got := p.Page(items(5), 0); len(got) != 5 {
		t.Errorf("page 0 = %v, want page 1's items", got)
	}
	if got := p.Page(items(5), -3); len(got) != 5 {
		t.Errorf("page -3 = %v, want page 1's items", got)
	}
}

func TestExactMultiple(t *testing.T) {
	p := New[int](10)
	if got := p.TotalPages(20); got != 2 {
		t.Errorf("TotalPages(20) = %d, want 2", got)
	}
	if got := p.TotalPages(0); got != 0 {
		t.Errorf("TotalPages(0) = %d, want 0", got)
	}
}

func TestEmptyItems(t *testing.T) {
	p := New[int](10)
	if got := p.Page(nil, 1); len(got) != 0 {
		t.Errorf("page 1 of nothing = %v", got)
	}
}
